package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	categorydomain "github.com/ventia/ventia/internal/category/domain"
	clientdomain "github.com/ventia/ventia/internal/client/domain"
	"github.com/ventia/ventia/internal/config"
	employeedomain "github.com/ventia/ventia/internal/employee/domain"
	orderdomain "github.com/ventia/ventia/internal/order/domain"
	paymentdomain "github.com/ventia/ventia/internal/payment/domain"
	productdomain "github.com/ventia/ventia/internal/product/domain"
	servicesdomain "github.com/ventia/ventia/internal/services/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "sqlite" {
			return conn.AutoMigrate(
				&clientdomain.Client{},
				&employeedomain.Employee{},
				&categorydomain.Category{},
				&categorydomain.ProductCategory{},
				&productdomain.Product{},
				&servicesdomain.Service{},
				&servicesdomain.ServiceInput{},
				&orderdomain.Order{},
				&orderdomain.OrderProduct{},
				&orderdomain.OrderService{},
				&paymentdomain.Payment{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB, cfg.DBType)
	}),
)
