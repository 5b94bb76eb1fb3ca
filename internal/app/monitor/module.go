package monitor

import "go.uber.org/fx"

// Module provides the self stats monitor of the navigator process
var Module = fx.Options(
	fx.Provide(NewMonitor),
)
