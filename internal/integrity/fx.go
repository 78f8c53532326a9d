package integrity

import (
	"go.uber.org/fx"

	orderdomain "github.com/ventia/ventia/internal/order/domain"
)

var Module = fx.Module("integrity",
	fx.Provide(
		New,
		func(c *Checker) orderdomain.StoreOps { return c },
	),
)
