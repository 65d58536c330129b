package server

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/hrplatform/freelancer-api/docs"
	"github.com/hrplatform/freelancer-api/internal/auth"
	"github.com/hrplatform/freelancer-api/internal/client/accounting"
	"github.com/hrplatform/freelancer-api/internal/client/email"
	"github.com/hrplatform/freelancer-api/internal/client/fx"
	"github.com/hrplatform/freelancer-api/internal/client/vies"
	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/handlers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/middleware"
	"github.com/hrplatform/freelancer-api/internal/services"
)

// Handler Definitions
var (
	freelancerHandler *handlers.FreelancerHandler
	contractHandler   *handlers.ContractHandler
	paymentHandler    *handlers.PaymentHandler
	rateHandler       *handlers.RateHandler
	taxHandler        *handlers.TaxHandler
	apiKeyHandler     *handlers.APIKeyHandler
	healthHandler     *handlers.HealthHandler

	// Database
	dbPool    *pgxpool.Pool
	dbQueries *db.Queries
)

// InitializeHandlers builds the connection pool, the external clients,
// the service layer, and the handler set.
func InitializeHandlers() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	dbPool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(dbPool)

	rateProvider := fx.NewClient(os.Getenv("FX_API_BASE_URL"))
	vatValidator := vies.NewClient(os.Getenv("VIES_BASE_URL"))

	taxService := services.NewTaxService(dbQueries)
	rateService := services.NewExchangeRateService(dbQueries, rateProvider)
	calculator := services.NewPaymentCalculator(taxService, rateService)
	freelancerService := services.NewFreelancerService(dbQueries, vatValidator)
	contractService := services.NewContractService(dbQueries)
	paymentService := services.NewPaymentService(dbQueries, calculator, buildAccountingSink(), buildEmailService())

	if err := taxService.SeedReferenceData(context.Background()); err != nil {
		logger.Fatal("Unable to seed tax reference data", zap.Error(err))
	}

	commonServices := handlers.NewCommonServices(
		freelancerService,
		contractService,
		paymentService,
		taxService,
		rateService,
		calculator,
	)

	freelancerHandler = handlers.NewFreelancerHandler(commonServices)
	contractHandler = handlers.NewContractHandler(commonServices)
	paymentHandler = handlers.NewPaymentHandler(commonServices, &auth.Authorizer{})
	rateHandler = handlers.NewRateHandler(commonServices)
	taxHandler = handlers.NewTaxHandler(commonServices)
	apiKeyHandler = handlers.NewAPIKeyHandler(dbQueries)
	healthHandler = handlers.NewHealthHandler(dbPool)
}

// buildAccountingSink dispatches to SQS when a queue is configured and
// logs locally otherwise.
func buildAccountingSink() services.AccountingSink {
	queueURL := os.Getenv("ACCOUNTING_QUEUE_URL")
	if queueURL == "" {
		logger.Info("ACCOUNTING_QUEUE_URL not set, accounting entries will be logged locally")
		return accounting.NewLocalSink()
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal("Unable to load AWS configuration", zap.Error(err))
	}
	return accounting.NewSQSSink(sqs.NewFromConfig(cfg), queueURL)
}

// buildEmailService returns nil when no Resend key is configured;
// notifications are then skipped.
func buildEmailService() *services.EmailService {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		logger.Info("RESEND_API_KEY not set, payment notifications disabled")
		return nil
	}

	fromEmail := os.Getenv("NOTIFICATIONS_FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "payments@hrplatform.example"
	}
	fromName := os.Getenv("NOTIFICATIONS_FROM_NAME")
	if fromName == "" {
		fromName = "HR Platform Payments"
	}

	sender := email.NewResendSender(apiKey, fromEmail, fromName)
	return services.NewEmailService(sender, fromName)
}

// InitializeRoutes wires middleware and the API surface onto the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	v1 := router.Group("/api/v1")
	v1.Use(auth.APIKeyMiddleware(dbQueries))
	v1.Use(rateLimiterFromEnv().Middleware())
	{
		write := v1.Group("/")
		write.Use(auth.RequireAccess(constants.AccessLevelWrite))

		admin := v1.Group("/")
		admin.Use(auth.RequireAccess(constants.AccessLevelAdmin))

		// Freelancers
		v1.GET("/freelancers", freelancerHandler.ListFreelancers)
		v1.GET("/freelancers/:freelancer_id", freelancerHandler.GetFreelancer)
		v1.GET("/freelancers/:freelancer_id/summary", freelancerHandler.GetFreelancerSummary)
		v1.GET("/freelancers/:freelancer_id/consents", freelancerHandler.ListConsents)
		write.POST("/freelancers", freelancerHandler.CreateFreelancer)
		write.PUT("/freelancers/:freelancer_id", freelancerHandler.UpdateFreelancer)
		write.POST("/freelancers/:freelancer_id/vat-validation", freelancerHandler.ValidateFreelancerVAT)
		write.POST("/freelancers/:freelancer_id/consents", freelancerHandler.GrantConsent)
		admin.POST("/freelancers/:freelancer_id/anonymize", freelancerHandler.AnonymizeFreelancer)

		// Contracts
		v1.GET("/contracts", contractHandler.ListContracts)
		v1.GET("/contracts/:contract_id", contractHandler.GetContract)
		v1.GET("/contracts/:contract_id/summary", contractHandler.GetContractSummary)
		write.POST("/contracts", contractHandler.CreateContract)
		write.POST("/contracts/:contract_id/activate", contractHandler.ActivateContract)
		write.POST("/contracts/:contract_id/terminate", contractHandler.TerminateContract)
		write.POST("/contracts/:contract_id/expire", contractHandler.ExpireContract)
		write.POST("/contracts/:contract_id/renew", contractHandler.RenewContract)
		write.PUT("/contracts/:contract_id/milestones/:milestone_id", contractHandler.UpdateMilestoneStatus)
		write.POST("/contracts/:contract_id/payments", paymentHandler.CreateContractPayment)

		// Payments
		v1.GET("/payments", paymentHandler.ListPayments)
		v1.GET("/payments/:payment_id", paymentHandler.GetPayment)
		v1.GET("/payments/:payment_id/preview", paymentHandler.PreviewPayment)
		write.POST("/payments", paymentHandler.CreatePayment)
		write.PUT("/payments/:payment_id", paymentHandler.UpdatePayment)
		write.POST("/payments/:payment_id/items", paymentHandler.AddPaymentItem)
		write.DELETE("/payments/:payment_id/items/:item_id", paymentHandler.RemovePaymentItem)
		write.POST("/payments/:payment_id/expenses", paymentHandler.AddPaymentExpense)
		write.PUT("/payments/:payment_id/expenses/:expense_id/approval", paymentHandler.SetExpenseApproval)
		write.POST("/payments/:payment_id/submit", paymentHandler.SubmitPayment)
		write.POST("/payments/:payment_id/approve", paymentHandler.ApprovePayment)
		write.POST("/payments/:payment_id/reject", paymentHandler.RejectPayment)
		write.POST("/payments/:payment_id/pay", paymentHandler.MarkPaymentPaid)

		// Exchange rates
		v1.GET("/rates", rateHandler.GetRate)
		v1.GET("/rates/latest", rateHandler.ListLatestRates)
		v1.GET("/rates/convert", rateHandler.ConvertAmount)
		write.POST("/rates/refresh", rateHandler.RefreshRates)
		admin.PUT("/rates", rateHandler.UpsertRate)

		// Tax rules
		v1.GET("/tax/classification", taxHandler.ClassifyTax)
		v1.GET("/tax/configs", taxHandler.ListTaxConfigs)
		v1.GET("/tax/configs/:country", taxHandler.GetTaxConfig)
		v1.GET("/tax/treaties", taxHandler.ListTreaties)
		admin.PUT("/tax/configs", taxHandler.UpsertTaxConfig)
		admin.POST("/tax/treaties", taxHandler.CreateTreaty)
		admin.DELETE("/tax/treaties/:treaty_id", taxHandler.DeactivateTreaty)

		// API keys
		admin.POST("/api-keys", apiKeyHandler.CreateAPIKey)
	}
}

// Run starts the HTTP server and blocks until the context is cancelled,
// then drains in-flight requests.
func Run(ctx context.Context, router *gin.Engine) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	logger.Info("Server is shutting down...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	dbPool.Close()
	return nil
}

func rateLimiterFromEnv() *middleware.RateLimiter {
	limit := 120
	if raw := os.Getenv("RATE_LIMIT_PER_MINUTE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	burst := limit / 4
	if burst < 5 {
		burst = 5
	}
	return middleware.NewRateLimiter(limit, burst)
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-API-Key", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	}

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
