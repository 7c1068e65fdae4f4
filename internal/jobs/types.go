package jobs

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeVerificationProcess = "verification:process"
	TypeVerificationRequeue = "verification:requeue"
	TypeConsistencyAudit    = "consistency:audit"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// VerificationJobPayload asks a worker to drain the verification queue.
// ConversionID only tags the task for logs; the worker processes the queue in
// priority order.
type VerificationJobPayload struct {
	ConversionID *uuid.UUID `json:"conversion_id,omitempty"`
	MaxItems     int        `json:"max_items"`
	HighPriority bool       `json:"high_priority"`
}

// NewVerificationTask creates a verification processing task
func NewVerificationTask(payload VerificationJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	queue := QueueMedium
	if payload.HighPriority {
		queue = QueueHigh
	}
	return asynq.NewTask(TypeVerificationProcess, data, asynq.Queue(queue), asynq.MaxRetry(3), asynq.Timeout(2*time.Minute)), nil
}

// RequeueJobPayload moves retryable failed queue items back to pending
type RequeueJobPayload struct {
	Limit int `json:"limit"`
}

// NewRequeueTask creates a requeue task
func NewRequeueTask(payload RequeueJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeVerificationRequeue, data, asynq.Queue(QueueLow), asynq.MaxRetry(1)), nil
}

// NewConsistencyAuditTask creates a consistency audit task
func NewConsistencyAuditTask() *asynq.Task {
	return asynq.NewTask(TypeConsistencyAudit, nil, asynq.Queue(QueueLow), asynq.MaxRetry(1))
}
