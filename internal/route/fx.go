package route

import (
	"github.com/neuraq/gasdesk/internal/route/repository"
	"github.com/neuraq/gasdesk/internal/route/service"
	"go.uber.org/fx"
)

var Module = fx.Module("route.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
