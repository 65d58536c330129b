package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/davecgh/go-spew/spew"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/client/accounting"
	"github.com/hrplatform/freelancer-api/internal/client/email"
	"github.com/hrplatform/freelancer-api/internal/client/fx"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/services"
)

// schedulerConfig collects everything read from the environment so local
// runs can dump it before executing.
type schedulerConfig struct {
	Stage              string
	BaseCurrency       string
	AccountingQueueURL string
	FXBaseURL          string
	NotifyFromEmail    string
	NotifyFromName     string
	ResendConfigured   bool
}

// Application holds all dependencies for the Lambda handler
type Application struct {
	scheduler *services.SchedulerService
}

// HandleRequest runs the daily housekeeping tasks once.
func (app *Application) HandleRequest(ctx context.Context) error {
	logger.Info("Starting scheduled run")
	if err := app.scheduler.RunDaily(ctx); err != nil {
		logger.Error("Scheduled run finished with errors", zap.Error(err))
		return err
	}
	logger.Info("Scheduled run finished")
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := helpers.GetStage()
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: %q", stage)
	}

	logger.InitLogger(stage)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := schedulerConfig{
		Stage:              stage,
		BaseCurrency:       os.Getenv("BASE_CURRENCY"),
		AccountingQueueURL: os.Getenv("ACCOUNTING_QUEUE_URL"),
		FXBaseURL:          os.Getenv("FX_API_BASE_URL"),
		NotifyFromEmail:    os.Getenv("NOTIFICATIONS_FROM_EMAIL"),
		NotifyFromName:     os.Getenv("NOTIFICATIONS_FROM_NAME"),
		ResendConfigured:   os.Getenv("RESEND_API_KEY") != "",
	}

	ctx := context.Background()
	app := &Application{scheduler: buildScheduler(ctx, cfg)}

	if stage == helpers.StageLocal {
		logger.Info("Running scheduler once in local mode")
		spew.Dump(cfg)
		if err := app.HandleRequest(ctx); err != nil {
			logger.Fatal("Local scheduler run failed", zap.Error(err))
		}
		return
	}

	lambda.Start(app.HandleRequest)
}

func buildScheduler(ctx context.Context, cfg schedulerConfig) *services.SchedulerService {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15

	// The pool is left open deliberately: lambda.Start returns only when
	// the execution environment shuts down, and warm starts reuse it.
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	queries := db.New(pool)

	rateService := services.NewExchangeRateService(queries, fx.NewClient(cfg.FXBaseURL))
	taxService := services.NewTaxService(queries)
	calculator := services.NewPaymentCalculator(taxService, rateService)

	var sink services.AccountingSink
	if cfg.AccountingQueueURL == "" {
		sink = accounting.NewLocalSink()
	} else {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Fatal("Unable to load AWS configuration", zap.Error(err))
		}
		sink = accounting.NewSQSSink(sqs.NewFromConfig(awsCfg), cfg.AccountingQueueURL)
	}

	var emailService *services.EmailService
	if cfg.ResendConfigured {
		sender := email.NewResendSender(os.Getenv("RESEND_API_KEY"), cfg.NotifyFromEmail, cfg.NotifyFromName)
		emailService = services.NewEmailService(sender, cfg.NotifyFromName)
	}

	paymentService := services.NewPaymentService(queries, calculator, sink, emailService)
	return services.NewSchedulerService(queries, rateService, paymentService, emailService, cfg.BaseCurrency)
}
