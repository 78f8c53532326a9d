package order

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/order/repository"
	"github.com/ventia/ventia/internal/order/service"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
