package customer

import (
	"github.com/neuraq/gasdesk/internal/customer/repository"
	"github.com/neuraq/gasdesk/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
