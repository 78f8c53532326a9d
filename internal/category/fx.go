package category

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/category/repository"
	"github.com/ventia/ventia/internal/category/service"
)

var Module = fx.Module("category.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
