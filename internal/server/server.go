package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neuraq/gasdesk/internal/clock"
	"github.com/neuraq/gasdesk/internal/config"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	gasrequestdomain "github.com/neuraq/gasdesk/internal/gasrequest/domain"
	messagedomain "github.com/neuraq/gasdesk/internal/message/domain"
	obsmiddleware "github.com/neuraq/gasdesk/internal/observability/logger"
	obsmetrics "github.com/neuraq/gasdesk/internal/observability/metrics"
	productdomain "github.com/neuraq/gasdesk/internal/product/domain"
	"github.com/neuraq/gasdesk/internal/providers/pdf"
	routedomain "github.com/neuraq/gasdesk/internal/route/domain"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           !cfg.IsProduction(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
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

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	clock         clock.Clock
	customerSvc   customerdomain.Service
	productSvc    productdomain.Service
	routeSvc      routedomain.Service
	saleSvc       saledomain.Service
	gasRequestSvc gasrequestdomain.Service
	messageSvc    messagedomain.Service
	pdfProvider   pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	Clock         clock.Clock
	CustomerSvc   customerdomain.Service
	ProductSvc    productdomain.Service
	RouteSvc      routedomain.Service
	SaleSvc       saledomain.Service
	GasRequestSvc gasrequestdomain.Service
	MessageSvc    messagedomain.Service
	PDFProvider   pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		clock:         p.Clock,
		customerSvc:   p.CustomerSvc,
		productSvc:    p.ProductSvc,
		routeSvc:      p.RouteSvc,
		saleSvc:       p.SaleSvc,
		gasRequestSvc: p.GasRequestSvc,
		messageSvc:    p.MessageSvc,
		pdfProvider:   p.PDFProvider,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/export", s.ExportCustomersCSV)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.GET("/customers/:id/sales", s.ListCustomerSales)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.POST("/routes", s.CreateRoute)
	api.GET("/routes", s.ListRoutes)
	api.DELETE("/routes/:id", s.DeleteRoute)

	api.POST("/sales", s.CreateSale)
	api.GET("/sales", s.ListSales)
	api.GET("/sales/summary", s.SalesSummary)
	api.GET("/sales/export", s.ExportSalesCSV)
	api.GET("/sales/:id", s.GetSaleByID)
	api.PUT("/sales/:id", s.UpdateSale)
	api.DELETE("/sales/:id", s.DeleteSale)
	api.GET("/sales/:id/receipt", s.DownloadSaleReceipt)

	api.POST("/gas-requests", s.CreateGasRequest)
	api.GET("/gas-requests", s.ListGasRequests)
	api.PATCH("/gas-requests/:id/status", s.UpdateGasRequestStatus)

	api.POST("/messages", s.CreateMessage)
	api.GET("/messages", s.ListMessages)
	api.PATCH("/messages/:id/read", s.MarkMessageRead)

	api.GET("/dashboard", s.Dashboard)
}
