package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"refspring/internal/config"
	"refspring/internal/observability"
	"refspring/internal/store"

	analyticsHandler "refspring/internal/analytics/handler"
	analyticsProcessor "refspring/internal/analytics/processor"
	authHandler "refspring/internal/auth/handler"
	authProcessor "refspring/internal/auth/processor"
	campaignHandler "refspring/internal/campaign/handler"
	campaignProcessor "refspring/internal/campaign/processor"
	clickHandler "refspring/internal/clicks/handler"
	clickProcessor "refspring/internal/clicks/processor"
	"refspring/internal/clients/mail"
	"refspring/internal/clients/payments"
	redisClient "refspring/internal/clients/redis"
	conversionHandler "refspring/internal/conversions/handler"
	conversionProcessor "refspring/internal/conversions/processor"
	"refspring/internal/email"
	"refspring/internal/events"
	"refspring/internal/events/consumers"
	fraudHandler "refspring/internal/fraud/handler"
	fraudProcessor "refspring/internal/fraud/processor"
	"refspring/internal/jobs"
	"refspring/internal/jobs/scheduler"
	scheduledJobs "refspring/internal/jobs/scheduler/jobs"
	"refspring/internal/jobs/workers"
	"refspring/internal/kafka"
	payoutHandler "refspring/internal/payouts/handler"
	payoutProcessor "refspring/internal/payouts/processor"
	"refspring/internal/ratelimit"
	reconcileHandler "refspring/internal/reconcile/handler"
	reconcileProcessor "refspring/internal/reconcile/processor"
	shortlinkHandler "refspring/internal/shortlink/handler"
	shortlinkProcessor "refspring/internal/shortlink/processor"
	verificationHandler "refspring/internal/verification/handler"
	verificationProcessor "refspring/internal/verification/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler         authHandler.Handler
	CampaignHandler     campaignHandler.Handler
	ShortLinkHandler    shortlinkHandler.Handler
	ClickHandler        clickHandler.Handler
	ConversionHandler   conversionHandler.Handler
	VerificationHandler verificationHandler.Handler
	ReconcileHandler    reconcileHandler.Handler
	StatsHandler        analyticsHandler.Handler
	FraudHandler        fraudHandler.Handler
	PayoutHandler       payoutHandler.Handler

	// Click throttling
	ClickLimiter  *ratelimit.Limiter
	FraudReporter ratelimit.Reporter

	// Background work. Scheduler is set only when Redis is disabled and the
	// verification sweep has to run inside the API process.
	Scheduler *scheduler.Scheduler
	// StatsConsumer is set when Kafka is enabled
	StatsConsumer *consumers.StatsConsumer

	// Clients (for cleanup)
	KafkaProducer  *kafka.Producer
	KafkaConsumers []*kafka.Consumer
	RedisClient    *redisClient.Client
	JobClient      *jobs.Client
}

// Services are the processors shared by the API server and the worker
type Services struct {
	Store        *store.Store
	Email        *email.EmailService
	Publisher    *events.Publisher
	Fraud        *fraudProcessor.Processor
	Verification *verificationProcessor.Processor
	Reconcile    *reconcileProcessor.Processor
}

// NewServices connects the store, mail, and event clients and builds the
// processors both binaries need. The returned producer may be nil.
func NewServices(cfg *config.Config, logger *observability.Logger) (*Services, *kafka.Producer, error) {
	db, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	svc := &Services{Store: &db}
	svc.Email = email.New(mailClient, cfg.Services.DefaultEmailSender, cfg.Services.WebAppURI, logger)

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		brokers := strings.Split(cfg.Kafka.Brokers, ",")
		if err := kafka.EnsureTopics(context.Background(), brokers, cfg.Kafka.ReplicationFactor, logger); err != nil {
			logger.WarnWithError(context.Background(), "could not ensure kafka topics", err)
		}
		producer = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:     brokers,
			ClientID:    cfg.Kafka.ConsumerGroup,
			Compression: "snappy",
		}, logger)
		svc.Publisher = events.NewPublisher(producer, logger)
	} else {
		logger.Info(context.Background(), "Kafka is disabled, domain events will not be published")
		svc.Publisher = events.NewPublisher(nil, logger)
	}

	svc.Fraud = fraudProcessor.New(svc.Store, cfg.Fraud.IPHashSalt, cfg.Fraud.BlacklistCacheTTL, logger)
	svc.Verification = verificationProcessor.New(svc.Store, svc.Publisher, verificationProcessor.Config{
		MaxRetries:  cfg.Verification.MaxRetries,
		ItemTimeout: cfg.Verification.ItemTimeout,
	}, logger)
	svc.Reconcile = reconcileProcessor.New(svc.Store, svc.Email, svc.Publisher, logger)

	return svc, producer, nil
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	svc, producer, err := NewServices(cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.Store = *svc.Store
	deps.KafkaProducer = producer

	// Redis backs the cross-instance click guard and the asynq queues
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Optional dependencies are passed as untyped nil so processor nil checks hold
	var guard clickProcessor.ClickGuard
	var enqueuer conversionProcessor.VerificationEnqueuer
	if deps.RedisClient != nil {
		guard = deps.RedisClient
		deps.JobClient = jobs.NewClient(cfg.Redis, logger)
		enqueuer = deps.JobClient
	}

	paymentClient := payments.NewStripeClient(cfg.Services.StripeSecretKey, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(svc.Store, paymentClient, logger)
	deps.CampaignHandler = campaignHandler.New(&campaignProc, logger)

	// Initialize short link processor and handler
	shortlinkProc := shortlinkProcessor.New(svc.Store, logger)
	deps.ShortLinkHandler = shortlinkHandler.New(shortlinkProc, cfg.Services.PublicBaseURL, logger)

	// Initialize click processor and handler
	clickProc := clickProcessor.New(svc.Store, svc.Fraud, guard, logger)
	deps.ClickHandler = clickHandler.New(clickProc, shortlinkProc, logger)
	deps.ClickLimiter = ratelimit.NewLimiter(cfg.Fraud.ClickRatePerMin, cfg.Fraud.ClickBurst)
	deps.FraudReporter = svc.Fraud

	// Initialize conversion processor and handler
	conversionProc := conversionProcessor.New(svc.Store, svc.Fraud, svc.Publisher, enqueuer, logger)
	deps.ConversionHandler = conversionHandler.New(conversionProc, svc.Store, svc.Fraud, cfg.Services.ShopifyWebhookKey, logger)

	// Initialize verification, reconcile, and fraud handlers
	deps.VerificationHandler = verificationHandler.New(svc.Verification, logger)
	deps.ReconcileHandler = reconcileHandler.New(svc.Reconcile, logger)
	deps.FraudHandler = fraudHandler.New(svc.Fraud, logger)

	// Initialize stats processor and handler
	statsProc := analyticsProcessor.New(svc.Store, cfg.Verification.StatsCacheTTL, logger)
	deps.StatsHandler = analyticsHandler.New(&statsProc, logger)

	// Conversion and lifecycle events drop stale cached stats
	if cfg.Kafka.Enabled {
		var sources []consumers.MessageSource
		for _, topic := range []string{kafka.TopicConversionEvents, kafka.TopicLifecycleEvents} {
			consumer := kafka.NewConsumer(kafka.ConsumerConfig{
				Brokers: strings.Split(cfg.Kafka.Brokers, ","),
				Topic:   topic,
				GroupID: cfg.Kafka.ConsumerGroup,
			}, logger)
			deps.KafkaConsumers = append(deps.KafkaConsumers, consumer)
			sources = append(sources, consumer)
		}
		deps.StatsConsumer = consumers.NewStatsConsumer(&statsProc, logger, sources...)
	}

	// Initialize payouts processor and handler
	payoutProc := payoutProcessor.New(svc.Store, paymentClient, svc.Publisher, cfg.Services.WebAppURI, logger)
	deps.PayoutHandler = payoutHandler.New(&payoutProc, cfg.Services.StripeWebhookSecret, logger)

	// Without Redis there is no asynq worker, so the API process sweeps the queue itself
	if deps.RedisClient == nil {
		deps.Scheduler = scheduler.New(logger)
		verificationWorker := workers.NewVerificationWorker(svc.Verification, cfg.Verification.BatchSize, logger)
		auditWorker := workers.NewAuditWorker(svc.Reconcile, logger)
		deps.Scheduler.Register(scheduledJobs.NewVerificationSweepJob(verificationWorker, logger, cfg.Verification.ProcessInterval))
		deps.Scheduler.Register(scheduledJobs.NewConsistencyAuditJob(auditWorker, logger, cfg.Verification.AuditInterval))
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	for _, c := range d.KafkaConsumers {
		c.Close()
	}
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.JobClient != nil {
		d.JobClient.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
	d.Store.Close()
}
