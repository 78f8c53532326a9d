package services

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/services/repository"
	"github.com/ventia/ventia/internal/services/service"
)

var Module = fx.Module("services.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
