package message

import (
	"github.com/neuraq/gasdesk/internal/message/repository"
	"github.com/neuraq/gasdesk/internal/message/service"
	"go.uber.org/fx"
)

var Module = fx.Module("message.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
