package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "propertyhub-backend/internal/adapter/http"
	appmw "propertyhub-backend/internal/adapter/middleware"
	"propertyhub-backend/internal/adapter/repository/mysql"
	"propertyhub-backend/internal/config"
	"propertyhub-backend/internal/infrastructure/cache"
	"propertyhub-backend/internal/infrastructure/db"
	"propertyhub-backend/internal/infrastructure/logger"
	"propertyhub-backend/internal/notifier"
	inspectionUC "propertyhub-backend/internal/usecase/inspection"
	insuranceUC "propertyhub-backend/internal/usecase/insurance"
	leaseUC "propertyhub-backend/internal/usecase/leaserequest"
	maintenanceUC "propertyhub-backend/internal/usecase/maintenance"
	partyUC "propertyhub-backend/internal/usecase/party"
	paymentUC "propertyhub-backend/internal/usecase/payment"
	propertyUC "propertyhub-backend/internal/usecase/property"
	purchaseUC "propertyhub-backend/internal/usecase/purchaserequest"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zl.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := mysql.AutoMigrate(gdb); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	zl.Info("mysql connected")

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zl.Fatal("redis connect failed", zap.Error(err))
	}

	// wiring
	tx := mysql.NewGormUoW(gdb)
	sink := notifier.New(mysql.NewNotificationRepository(gdb), zl)

	properties := mysql.NewPropertyRepository(gdb)
	parties := mysql.NewPartyRepository(gdb)
	leases := mysql.NewLeaseRepository(gdb)
	leaseRequests := mysql.NewLeaseRequestRepository(gdb)
	purchaseRequests := mysql.NewPurchaseRequestRepository(gdb)
	offers := mysql.NewOfferRepository(gdb)
	maintenanceRepo := mysql.NewMaintenanceRepository(gdb)
	inspections := mysql.NewInspectionRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)

	propertyHandler := httpadp.NewPropertyHandler(propertyUC.NewUsecase(properties, tx))
	partyHandler := httpadp.NewPartyHandler(partyUC.NewUsecase(parties))
	leaseHandler := httpadp.NewLeaseHandler(leaseUC.NewUsecase(leaseRequests, properties, tx, sink))
	purchaseHandler := httpadp.NewPurchaseHandler(purchaseUC.NewUsecase(purchaseRequests, properties, tx, sink))
	insuranceHandler := httpadp.NewInsuranceHandler(insuranceUC.NewUsecase(offers, properties, tx, sink))
	paymentHandler := httpadp.NewPaymentHandler(paymentUC.NewUsecase(payments, leases, tx, sink))
	maintenanceHandler := httpadp.NewMaintenanceHandler(maintenanceUC.NewUsecase(maintenanceRepo, tx, sink))
	inspectionHandler := httpadp.NewInspectionHandler(inspectionUC.NewUsecase(inspections, tx, sink))
	notificationHandler := httpadp.NewNotificationHandler(mysql.NewNotificationRepository(gdb))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/properties", propertyHandler.Create)
	e.GET("/properties/:id", propertyHandler.Get)

	e.POST("/owners", partyHandler.CreateOwner)
	e.GET("/owners/:id", partyHandler.GetOwner)
	e.POST("/tenants", partyHandler.CreateTenant)
	e.GET("/tenants/:id", partyHandler.GetTenant)

	e.POST("/leases/requests", leaseHandler.CreateRequest)
	e.GET("/leases/requests/:id", leaseHandler.GetRequest)
	e.PUT("/leases/requests/:id", leaseHandler.ReviewRequest)

	e.POST("/purchases/requests", purchaseHandler.CreateRequest)
	e.PUT("/purchases/requests/:id", purchaseHandler.ReviewRequest)

	e.POST("/insurance/offers", insuranceHandler.CreateOffer)
	e.GET("/insurance/offers/:id", insuranceHandler.GetOffer)
	e.PUT("/insurance/offers/:id/respond", insuranceHandler.RespondOffer)

	e.POST("/payments", paymentHandler.Create)
	e.GET("/payments/:id", paymentHandler.Get)
	e.PUT("/payments/:id", paymentHandler.Confirm)

	e.POST("/maintenance", maintenanceHandler.Create)
	e.GET("/maintenance/:id", maintenanceHandler.Get)
	e.PUT("/maintenance/:id", maintenanceHandler.Update)
	e.PATCH("/maintenance/:id/status", maintenanceHandler.UpdateStatus)

	e.POST("/inspections", inspectionHandler.Create)
	e.GET("/inspections/:id", inspectionHandler.Get)
	e.PUT("/inspections/:id", inspectionHandler.Update)
	e.PATCH("/inspections/:id/status", inspectionHandler.UpdateStatus)

	e.GET("/notifications/:user_type/:user_id", notificationHandler.List)
	e.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

	addr := ":" + cfg.AppPort
	zl.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
