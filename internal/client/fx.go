package client

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/client/repository"
	"github.com/ventia/ventia/internal/client/service"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
