package jobs

import (
	"context"
	"fmt"

	"refspring/internal/config"
	"refspring/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueVerificationJob enqueues a verification queue drain
func (c *Client) EnqueueVerificationJob(ctx context.Context, payload VerificationJobPayload) error {
	task, err := NewVerificationTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create verification task", err)
		return fmt.Errorf("failed to create verification task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue verification task", err)
		return fmt.Errorf("failed to enqueue verification task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued verification task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
