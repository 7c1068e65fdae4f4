package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"refspring/internal/bootstrap"
	"refspring/internal/config"
	"refspring/internal/jobs"
	"refspring/internal/jobs/workers"
	"refspring/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.Redis.Enabled {
		log.Fatal("Redis is disabled; the API server runs verification in-process instead")
	}

	svc, producer, err := bootstrap.NewServices(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer svc.Store.Close()
	if producer != nil {
		defer producer.Close()
	}

	// Initialize workers
	verificationWorker := workers.NewVerificationWorker(svc.Verification, cfg.Verification.BatchSize, logger)
	auditWorker := workers.NewAuditWorker(svc.Reconcile, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				jobs.QueueHigh:   6,
				jobs.QueueMedium: 3,
				jobs.QueueLow:    1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeVerificationProcess, verificationWorker.ProcessVerificationTask)
	mux.HandleFunc(jobs.TypeVerificationRequeue, verificationWorker.ProcessRequeueTask)
	mux.HandleFunc(jobs.TypeConsistencyAudit, auditWorker.ProcessConsistencyAuditTask)

	// Periodic tasks: drain the queue as a safety net for dropped enqueues,
	// requeue retryable failures, and audit references nightly
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: &asynqLogger{logger: logger},
	})

	sweepTask, err := jobs.NewVerificationTask(jobs.VerificationJobPayload{MaxItems: cfg.Verification.BatchSize})
	if err != nil {
		log.Fatalf("Failed to build verification task: %v", err)
	}
	requeueTask, err := jobs.NewRequeueTask(jobs.RequeueJobPayload{})
	if err != nil {
		log.Fatalf("Failed to build requeue task: %v", err)
	}

	periodic := []struct {
		cronspec string
		task     *asynq.Task
	}{
		{fmt.Sprintf("@every %s", cfg.Verification.ProcessInterval), sweepTask},
		{"@every 5m", requeueTask},
		{fmt.Sprintf("@every %s", cfg.Verification.AuditInterval), jobs.NewConsistencyAuditTask()},
	}
	for _, p := range periodic {
		if _, err := scheduler.Register(p.cronspec, p.task); err != nil {
			logger.Error(ctx, fmt.Sprintf("failed to register periodic task %s", p.task.Type()), err)
		}
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
