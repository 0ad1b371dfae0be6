package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"purefarm/src/config"
	"purefarm/src/controller"
	"purefarm/src/routes"
	"purefarm/src/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := config.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect database")
	}

	authService := &service.AuthService{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		JWTTTL:    time.Duration(cfg.JWTExpireMin) * time.Minute,
		Logger:    logger,
	}
	emailService := service.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom, logger)
	paymentService := service.NewPaymentService(cfg.PaymentBaseURL, cfg.PaymentKeyID, cfg.PaymentSecret, logger)
	cartService := &service.CartService{DB: db}
	productService := &service.ProductService{DB: db, UploadDir: cfg.UploadDir}
	orderService := &service.OrderService{DB: db, Payments: paymentService, Email: emailService, Logger: logger}
	deliveryService := &service.DeliveryService{DB: db, Logger: logger}

	r := gin.Default()
	routes.Register(r, authService, routes.Controllers{
		Auth:       &controller.AuthController{Auth: authService},
		Users:      &controller.UserController{Auth: authService},
		Products:   &controller.ProductController{Products: productService},
		Cart:       &controller.CartController{Cart: cartService},
		Payments:   &controller.PaymentController{Payments: paymentService, Orders: orderService},
		Orders:     &controller.OrderController{Orders: orderService},
		Deliveries: &controller.DeliveryController{Deliveries: deliveryService},
	}, cfg.UploadDir)

	logger.WithField("addr", cfg.HTTPAddr).Info("Starting PureFarm Market")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}
