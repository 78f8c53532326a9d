package auth

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/config"
)

var Module = fx.Module("auth",
	fx.Provide(func(cfg config.Config) *Manager {
		return NewManager(cfg.JWT)
	}),
)
