package navigation

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the navigation package
var Module = fx.Options(
	fx.Provide(NewEngine),
)
