package payment

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/payment/repository"
	"github.com/ventia/ventia/internal/payment/service"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
