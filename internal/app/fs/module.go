package fs

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the fs package
var Module = fx.Options(
	fx.Provide(NewLister),
)
