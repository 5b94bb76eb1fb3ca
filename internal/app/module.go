package app

import (
	"go.uber.org/fx"

	"fnav/internal/app/actions"
	"fnav/internal/app/cli"
	"fnav/internal/app/dispatch"
	"fnav/internal/app/fs"
	"fnav/internal/app/monitor"
	"fnav/internal/app/navigation"
	"fnav/internal/app/ui/wire"
	"fnav/internal/app/watcher"
	"fnav/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	logger.Module,
	actions.Module,
	fs.Module,
	navigation.Module,
	dispatch.Module,
	watcher.Module,
	monitor.Module,
	wire.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
