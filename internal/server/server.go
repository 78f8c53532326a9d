package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ventia/ventia/internal/auth"
	"github.com/ventia/ventia/internal/category"
	categorydomain "github.com/ventia/ventia/internal/category/domain"
	"github.com/ventia/ventia/internal/client"
	clientdomain "github.com/ventia/ventia/internal/client/domain"
	"github.com/ventia/ventia/internal/config"
	"github.com/ventia/ventia/internal/employee"
	employeedomain "github.com/ventia/ventia/internal/employee/domain"
	"github.com/ventia/ventia/internal/integrity"
	"github.com/ventia/ventia/internal/invoice"
	invoicedomain "github.com/ventia/ventia/internal/invoice/domain"
	"github.com/ventia/ventia/internal/migration"
	obslogger "github.com/ventia/ventia/internal/observability/logger"
	obsmetrics "github.com/ventia/ventia/internal/observability/metrics"
	obstracing "github.com/ventia/ventia/internal/observability/tracing"
	"github.com/ventia/ventia/internal/order"
	orderdomain "github.com/ventia/ventia/internal/order/domain"
	"github.com/ventia/ventia/internal/payment"
	paymentdomain "github.com/ventia/ventia/internal/payment/domain"
	"github.com/ventia/ventia/internal/product"
	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/internal/providers/completion"
	"github.com/ventia/ventia/internal/providers/email"
	"github.com/ventia/ventia/internal/providers/pdf"
	"github.com/ventia/ventia/internal/providers/storage"
	"github.com/ventia/ventia/internal/ratelimit"
	"github.com/ventia/ventia/internal/services"
	servicesdomain "github.com/ventia/ventia/internal/services/domain"
	"github.com/ventia/ventia/internal/tasks"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	integrity.Module,
	auth.Module,
	ratelimit.Module,
	tasks.Module,
	storage.Module,
	completion.Module,
	email.Module,
	pdf.Module,
	migration.Module,
	client.Module,
	employee.Module,
	category.Module,
	product.Module,
	services.Module,
	order.Module,
	payment.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	authMgr     *auth.Manager
	clientSvc   clientdomain.Service
	employeeSvc employeedomain.Service
	categorySvc categorydomain.Service
	productSvc  productdomain.Service
	servicesMgr servicesdomain.Manager
	orderSvc    orderdomain.Service
	paymentSvc  paymentdomain.Service
	invoiceSvc  invoicedomain.Service
	storage     storage.Provider
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	AuthMgr     *auth.Manager
	ClientSvc   clientdomain.Service
	EmployeeSvc employeedomain.Service
	CategorySvc categorydomain.Service
	ProductSvc  productdomain.Service
	ServicesMgr servicesdomain.Manager
	OrderSvc    orderdomain.Service
	PaymentSvc  paymentdomain.Service
	InvoiceSvc  invoicedomain.Service
	Storage     storage.Provider
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		authMgr:     p.AuthMgr,
		clientSvc:   p.ClientSvc,
		employeeSvc: p.EmployeeSvc,
		categorySvc: p.CategorySvc,
		productSvc:  p.ProductSvc,
		servicesMgr: p.ServicesMgr,
		orderSvc:    p.OrderSvc,
		paymentSvc:  p.PaymentSvc,
		invoiceSvc:  p.InvoiceSvc,
		storage:     p.Storage,
	}
	s.registerRoutes()
	return s
}

func NewEngine(log *zap.Logger, metrics *obsmetrics.HTTPMetrics, limiter *ratelimit.Limiter, cfg config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(metrics))
	r.Use(limiter.GinMiddleware())
	r.Use(corsMiddleware(cfg.CORSAllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, metrics *obsmetrics.HTTPMetrics, limiter *ratelimit.Limiter, cfg config.Config) *gin.Engine {
	return NewEngine(log, metrics, limiter, cfg)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (len(allowed) == 0 || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.GET("/files/*key", s.streamFile)
	r.POST("/user/login", s.login)

	authed := r.Group("/", auth.RequireAuth(s.authMgr))

	orders := authed.Group("/order")
	{
		orders.POST("/", s.createOrder)
		orders.GET("/:id", s.getOrder)
		orders.PATCH("/", s.updateOrder)
		orders.DELETE("/:id", s.deleteOrder)
		orders.POST("/search", s.searchOrders)
		orders.PATCH("/status/:order_id/:status", s.changeOrderStatus)
		orders.GET("/:id/products", s.orderProducts)
		orders.GET("/:id/services", s.orderServices)
		orders.POST("/product/", s.addOrderProduct)
		orders.PATCH("/product/", s.updateOrderProduct)
		orders.DELETE("/product/", s.removeOrderProduct)
		orders.POST("/service/", s.addOrderService)
		orders.PATCH("/service/", s.updateOrderService)
		orders.DELETE("/service/", s.removeOrderService)
	}

	products := authed.Group("/product")
	{
		products.POST("/", s.createProduct)
		products.GET("/:id", s.getProduct)
		products.PATCH("/:id", s.updateProduct)
		products.DELETE("/:id", s.deleteProduct)
		products.POST("/search", s.searchProducts)
		products.GET("/search/low-stock", s.lowStockProducts)
		products.GET("/search/expired", s.expiredProducts)
		products.PATCH("/image/:id", s.updateProductImage)
		products.DELETE("/image/:id", s.deleteProductImage)
		products.PATCH("/stock/:id/:stock/:replace", s.setProductStock)
		products.GET("/:id/categories", s.productCategories)
	}

	categories := authed.Group("/category")
	{
		categories.POST("/", s.createCategory)
		categories.GET("/", s.listCategories)
		categories.GET("/:category_id", s.getCategory)
		categories.PATCH("/:category_id", s.updateCategory)
		categories.DELETE("/:category_id", s.deleteCategory)
		categories.POST("/:category_id/product/:product_id", s.assignCategoryProduct)
		categories.DELETE("/:category_id/product/:product_id", s.removeCategoryProduct)
	}

	svc := authed.Group("/service")
	{
		svc.POST("/", s.createService)
		svc.GET("/:id", s.getService)
		svc.PATCH("/:id", s.updateService)
		svc.DELETE("/:id", s.deleteService)
		svc.POST("/search", s.searchServices)
		svc.GET("/:id/products", s.serviceInputProducts)
		svc.POST("/service-input/", s.addServiceInput)
		svc.DELETE("/service-input/:service_id/:product_id", s.removeServiceInput)
	}

	users := authed.Group("/user")
	{
		users.POST("/employee/", auth.RequireAdmin(), s.createEmployee)
		users.GET("/employee/:id", s.getEmployee)
		users.GET("/employee/email/:email", s.getEmployeeByEmail)
		users.GET("/employee/document/:documentid", s.getEmployeeByDocument)
		users.PATCH("/employee/:id", s.updateEmployee)
		users.DELETE("/employee/:id", auth.RequireAdmin(), s.deleteEmployee)
		users.POST("/employee/search", s.searchEmployees)

		users.POST("/client", s.createClient)
		users.GET("/client/:id", s.getClient)
		users.GET("/client/email/:email", s.getClientByEmail)
		users.GET("/client/document/:documentid", s.getClientByDocument)
		users.PATCH("/client/:id", s.updateClient)
		users.DELETE("/client/:id", s.deleteClient)
		users.POST("/client/search", s.searchClients)
	}

	others := authed.Group("/others")
	{
		others.POST("/payment", s.createPayment)
		others.GET("/payment/:id", s.getPayment)
		others.PATCH("/payment/status/:id/:status", s.changePaymentStatus)
		others.DELETE("/payment/:id", s.deletePayment)
		others.POST("/payment/search", s.searchPayments)
	}

	authed.POST("/invoice/generate", s.generateInvoice)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
