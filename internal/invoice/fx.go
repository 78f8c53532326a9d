package invoice

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/invoice/service"
)

var Module = fx.Module("invoice.service",
	fx.Provide(service.New),
)
