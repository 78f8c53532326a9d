package email

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/config"
)

var Module = fx.Module("providers.email",
	fx.Provide(func(cfg config.Config) Provider {
		return NewSMTP(cfg.SMTP)
	}),
)
