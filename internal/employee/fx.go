package employee

import (
	"go.uber.org/fx"

	"github.com/ventia/ventia/internal/employee/repository"
	"github.com/ventia/ventia/internal/employee/service"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
