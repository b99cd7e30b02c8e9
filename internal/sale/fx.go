package sale

import (
	"github.com/neuraq/gasdesk/internal/sale/repository"
	"github.com/neuraq/gasdesk/internal/sale/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sale.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
