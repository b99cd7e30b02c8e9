package product

import (
	"github.com/neuraq/gasdesk/internal/product/repository"
	"github.com/neuraq/gasdesk/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
