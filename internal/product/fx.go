package product

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/product/repository"
	"github.com/ventia/ventia/internal/product/service"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
