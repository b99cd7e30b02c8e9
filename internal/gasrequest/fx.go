package gasrequest

import (
	"github.com/neuraq/gasdesk/internal/gasrequest/repository"
	"github.com/neuraq/gasdesk/internal/gasrequest/service"
	"go.uber.org/fx"
)

var Module = fx.Module("gasrequest.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
