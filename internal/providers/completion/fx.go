package completion

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ventia/ventia/internal/config"
)

var Module = fx.Module("providers.completion",
	fx.Provide(func(cfg config.Config, log *zap.Logger) Provider {
		if cfg.Groq.APIKey == "" {
			log.Warn("GROQ_API_KEY not set, product descriptions disabled")
			return NoOp{}
		}
		return NewGroq(cfg.Groq, log)
	}),
)
