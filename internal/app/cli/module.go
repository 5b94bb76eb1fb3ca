package cli

import "go.uber.org/fx"

// Module provides the command dispatcher run by the application
var Module = fx.Provide(NewCLI)
