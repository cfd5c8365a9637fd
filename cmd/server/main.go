package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"library-service/internal/application/events"
	"library-service/internal/application/services"
	"library-service/internal/config"
	deliveryhttp "library-service/internal/delivery/http"
	"library-service/internal/domain/repositories"
	"library-service/internal/infrastructure"
	"library-service/internal/infrastructure/db/postgres"
	"library-service/internal/messaging"
)

func main() {
	cfg := config.Load()

	db, err := postgres.Connect(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	var revocationStore repositories.RevocationStore
	redisClient, err := infrastructure.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Printf("redis unavailable (%v), falling back to in-memory token revocation", err)
		revocationStore = infrastructure.NewMemoryRevocationStore()
	} else {
		revocationStore = infrastructure.NewRedisRevocationStore(redisClient)
		defer redisClient.Close()
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	var mailer events.Mailer
	if cfg.EmailAPIKey != "" {
		mailer = infrastructure.NewSendGridMailer(cfg.EmailAPIKey, cfg.EmailSender)
	} else {
		log.Println("EMAIL_API_KEY not set, email notifications disabled")
	}

	var publisher events.EventPublisher
	if cfg.NatsURL != "" {
		natsPublisher, err := messaging.ConnectNats(cfg.NatsURL)
		if err != nil {
			log.Printf("nats unavailable (%v), event publishing disabled", err)
		} else {
			publisher = natsPublisher
			defer natsPublisher.Close()
		}
	}

	dispatcher := events.NewDispatcher(mailer, publisher)
	defer dispatcher.Close()

	userRepo := postgres.NewUserRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	listRepo := postgres.NewBorrowingListRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	authService := services.NewAuthService(userRepo, jwtService, revocationStore)
	bookService := services.NewBookService(bookRepo, reviewRepo)
	listService := services.NewBorrowingListService(listRepo, bookRepo)
	transactionService := services.NewTransactionService(transactionRepo, userRepo, bookRepo, dispatcher)

	limiter := infrastructure.NewRateLimiter(10, 20)

	router := deliveryhttp.NewRouter(deliveryhttp.Handlers{
		Auth:          deliveryhttp.NewAuthHandler(authService),
		Books:         deliveryhttp.NewBookHandler(bookService),
		BorrowingList: deliveryhttp.NewBorrowingListHandler(listService),
		Transactions:  deliveryhttp.NewTransactionHandler(transactionService),
	}, jwtService, limiter)

	go func() {
		if err := router.Start(cfg.ListenAddr); err != nil {
			log.Println("server stopped: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		log.Println("shutdown: ", err)
	}
}
