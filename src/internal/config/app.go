package config

import (
	"benerin-admin-service/src/internal/delivery/http"
	"benerin-admin-service/src/internal/delivery/http/middleware"
	"benerin-admin-service/src/internal/delivery/http/route"
	"benerin-admin-service/src/internal/gateway/messaging"
	"benerin-admin-service/src/internal/repository"
	"benerin-admin-service/src/internal/usecase"
	"benerin-admin-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "benerin-admin-service/src/pkg/kafka/confluent"
	"benerin-admin-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"googlemaps.github.io/maps"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	Geoservice  *GeoService
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.DB)
	balanceRepository := repository.NewBalanceRepository(config.DB)
	payoutRepository := repository.NewPayoutRepository(config.DB)
	paymentRepository := repository.NewPaymentRepository(config.DB)
	categoryRepository := repository.NewCategoryRepository(config.DB)
	techServiceRepository := repository.NewTechnicianServiceRepository(config.DB)
	requestRepository := repository.NewRequestRepository(config.DB)
	payoutProducer := messaging.NewPayoutProducer(config.Producer, config.Log)

	// setup use cases
	balanceUseCase := usecase.NewBalanceUseCase(
		config.Log,
		config.Validate,
		userRepository,
		balanceRepository,
	)
	payoutUseCase := usecase.NewPayoutUseCase(
		config.Log,
		config.Validate,
		payoutRepository,
		balanceRepository,
		config.Redis,
		payoutProducer,
		config.AsynqClient,
	)
	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		paymentRepository,
		requestRepository,
	)
	categoryUseCase := usecase.NewCategoryUseCase(
		config.Log,
		config.Validate,
		categoryRepository,
	)
	techServiceUseCase := usecase.NewTechnicianServiceUseCase(
		config.Log,
		config.Validate,
		userRepository,
		categoryRepository,
		techServiceRepository,
	)
	userUseCase := usecase.NewUserUseCase(
		config.Log,
		config.Validate,
		userRepository,
	)

	var mapsClient *maps.Client
	if config.Geoservice != nil {
		mapsClient = config.Geoservice.Client
	}
	requestUseCase := usecase.NewRequestUseCase(
		config.Log,
		config.Validate,
		requestRepository,
		mapsClient,
	)

	// setup controllers
	balanceController := http.NewBalanceController(balanceUseCase, config.Log)
	payoutController := http.NewPayoutController(payoutUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)
	categoryController := http.NewCategoryController(categoryUseCase, config.Log)
	techServiceController := http.NewTechnicianServiceController(techServiceUseCase, config.Log)
	userController := http.NewUserController(userUseCase, config.Log)
	requestController := http.NewRequestController(requestUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer()

	if config.Async != nil {
		config.Async.HandleFunc(usecase.TypeReconcilePayouts, payoutUseCase.HandleReconcileTask)
	}

	routeConfig := route.RouteConfig{
		App:                         config.App,
		BalanceController:           balanceController,
		PayoutController:            payoutController,
		PaymentController:           paymentController,
		CategoryController:          categoryController,
		TechnicianServiceController: techServiceController,
		UserController:              userController,
		RequestController:           requestController,
		AuthMiddleware:              authMiddleware,
	}
	routeConfig.Setup()
}
