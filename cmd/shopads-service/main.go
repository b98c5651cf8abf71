package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hellolocal/shopads-service/internal/config"
	httpdelivery "github.com/hellolocal/shopads-service/internal/delivery/http"
	publisher "github.com/hellolocal/shopads-service/internal/infrastructure/kafka"
	"github.com/hellolocal/shopads-service/internal/infrastructure/metrics"
	"github.com/hellolocal/shopads-service/internal/infrastructure/migrate"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/repository"
	"github.com/hellolocal/shopads-service/internal/infrastructure/razorpay"
	"github.com/hellolocal/shopads-service/internal/infrastructure/redislock"
	"github.com/hellolocal/shopads-service/internal/infrastructure/sellers"
	adrequest "github.com/hellolocal/shopads-service/internal/usecase/adrequest"
	"github.com/hellolocal/shopads-service/internal/usecase/availability"
	payment "github.com/hellolocal/shopads-service/internal/usecase/payment"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.ShopAdsDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ShopAdsDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	adRequestRepo := repository.NewDefaultAdRequestRepository(db)
	shopAdRepo := repository.NewDefaultShopAdRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	commerceOrderRepo := repository.NewDefaultCommerceOrderRepository(db)

	// Init kafka publisher and notification sink
	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()
	notifier := publisher.NewKafkaNotifier(pub)

	// Init redis day locks
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	dayLocker := redislock.NewDayLockGuard(redisClient)

	// Init metrics
	adMetrics := metrics.NewAdMetrics()

	// Init outbound clients
	gateway := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.IsProduction())
	sellerDirectory := sellers.NewClient(cfg.Sellers.Host, cfg.Sellers.Port)

	// Init capacity engine
	calculator := availability.NewCalculator(cfg.Ads.MaxActiveAds)
	guard := availability.NewGuard(calculator, adRequestRepo, shopAdRepo, dayLocker)

	// Init usecases
	adRequestUsecase := adrequest.NewDefaultAdRequestUsecase(
		adRequestRepo,
		shopAdRepo,
		guard,
		sellerDirectory,
		notifier,
		adMetrics,
		cfg.Ads.PricePerDay,
		cfg.Ads.MaxActiveAds,
	)
	paymentUsecase := payment.NewDefaultPaymentUsecase(
		paymentRepo,
		adRequestRepo,
		commerceOrderRepo,
		gateway,
		pub,
		adMetrics,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.WebhookSecret,
		cfg.Ads.Currency,
		cfg.IsProduction(),
	)

	// Start HTTP server
	router := httpdelivery.NewRouter(adRequestUsecase, paymentUsecase, cfg.Ads.MaxActiveAds)
	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("starting shopads service", "addr", addr, "env", cfg.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to run http server: %v", err)
	}
}

func setupLogger(cfg *config.ShopAdsConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
