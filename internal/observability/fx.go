package observability

import (
	"github.com/neuraq/gasdesk/internal/config"
	"github.com/neuraq/gasdesk/internal/observability/logger"
	"github.com/neuraq/gasdesk/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		provideLoggerConfig,
		logger.New,
		metrics.NewHTTPMetrics,
	),
)

func provideLoggerConfig(cfg config.Config) logger.Config {
	return logger.Config{
		ServiceName:         cfg.AppName,
		Environment:         cfg.Environment,
		Version:             cfg.AppVersion,
		Level:               cfg.LogLevel,
		Format:              cfg.LogFormat,
		Debug:               !cfg.IsProduction(),
		IncludeCaller:       true,
		IncludeStackOnError: !cfg.IsProduction(),
	}
}
