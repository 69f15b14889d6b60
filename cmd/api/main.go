package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joho/godotenv"
	"github.com/travelpoint-api/internal/application/auth"
	"github.com/travelpoint-api/internal/config"
	"github.com/travelpoint-api/internal/infrastructure/dynamo"
	"github.com/travelpoint-api/internal/infrastructure/google"
	jwtinfra "github.com/travelpoint-api/internal/infrastructure/jwt"
	"github.com/travelpoint-api/internal/infrastructure/memstore"
	"github.com/travelpoint-api/internal/infrastructure/postgres"
	"github.com/travelpoint-api/internal/infrastructure/redisstore"
	s3infra "github.com/travelpoint-api/internal/infrastructure/s3"
	"github.com/travelpoint-api/internal/infrastructure/smtp"
	"github.com/travelpoint-api/internal/infrastructure/sns"
	transporthttp "github.com/travelpoint-api/internal/transport/http"
)

// verificationStore holds both OTP codes and pending registrations.
type verificationStore interface {
	auth.OTPStore
	auth.PendingStore
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := postgres.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	awsCfg, err := dynamo.LoadAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}

	verifications, err := newVerificationStore(ctx, cfg, awsCfg)
	if err != nil {
		log.Fatalf("otp store: %v", err)
	}

	jwtProvider, err := jwtinfra.NewProvider(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath, cfg.AccessTokenTTL())
	if err != nil {
		log.Fatalf("jwt provider: %v", err)
	}

	var googleVerifier *google.Verifier
	if cfg.GoogleClientID != "" {
		googleVerifier = google.NewVerifier(cfg.GoogleClientID)
	} else {
		log.Println("WARN: GOOGLE_CLIENT_ID not set, Google login disabled")
	}

	var smsSender sns.SMSSender
	if cfg.BookingSMSEnabled {
		smsSender = sns.NewSender(awsCfg, cfg.SNSRegion)
	} else {
		log.Println("WARN: BOOKING_SMS_ENABLED is false, booking notifications disabled")
	}

	deps := &transporthttp.Deps{
		UserRepo:      postgres.NewUserRepo(db),
		FollowRepo:    postgres.NewFollowRepo(db),
		PostRepo:      postgres.NewPostRepo(db),
		GuideRepo:     postgres.NewGuideRepo(db),
		EquipmentRepo: postgres.NewEquipmentRepo(db),
		VehicleRepo:   postgres.NewVehicleRepo(db),
		AuthorityRepo: postgres.NewAuthorityRepo(db),
		BookingRepo:   postgres.NewBookingRepo(db),
		OTPs:          verifications,
		Pending:       verifications,
		Objects:       s3infra.NewStore(s3infra.NewClient(awsCfg, cfg), cfg),
		Mailer:        smtp.NewMailer(cfg),
		SMSSender:     smsSender,
		Google:        googleVerifier,
		JWTProvider:   jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, otp store=%s)", cfg.AppPort, cfg.AppEnv, cfg.OTPStoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// newVerificationStore selects the OTP backend named by OTP_STORE_BACKEND.
func newVerificationStore(ctx context.Context, cfg *config.Config, awsCfg aws.Config) (verificationStore, error) {
	switch cfg.OTPStoreBackend {
	case config.StoreMemory:
		store := memstore.New(cfg.OTPTTL())
		go store.RunSweeper(ctx, time.Minute)
		return store, nil
	case config.StoreRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return redisstore.New(rdb, cfg.OTPTTL()), nil
	case config.StoreDynamo:
		client := dynamo.NewClient(awsCfg, cfg)
		dynamo.Bootstrap(ctx, client, cfg.DynamoTableVerifications)
		return dynamo.NewVerificationStore(client, cfg.DynamoTableVerifications, cfg.OTPTTL()), nil
	default:
		return nil, fmt.Errorf("unknown OTP_STORE_BACKEND %q", cfg.OTPStoreBackend)
	}
}
