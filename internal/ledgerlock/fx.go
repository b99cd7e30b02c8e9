package ledgerlock

import "go.uber.org/fx"

var Module = fx.Module("ledgerlock",
	fx.Provide(NewLocker),
)
