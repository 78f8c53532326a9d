package storage

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ventia/ventia/internal/config"
)

var Module = fx.Module("providers.storage",
	fx.Provide(func(cfg config.Config, log *zap.Logger) (Provider, error) {
		return NewS3(cfg.Storage, log)
	}),
)
