package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskEnquiryIntegrityScan verifies stored enquiry aggregates.
	TaskEnquiryIntegrityScan = "enquiry:integrity_scan"
	// TaskRefdataWarmup pre-populates the master-data cache.
	TaskRefdataWarmup = "refdata:warmup"
)

// IntegrityScanPayload configures an integrity scan run.
type IntegrityScanPayload struct {
	// MaxConcurrency caps parallel record checks. Zero means the default.
	MaxConcurrency int `json:"maxConcurrency"`
}

// NewIntegrityScanTask constructs an Asynq task.
func NewIntegrityScanTask(payload IntegrityScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEnquiryIntegrityScan, data), nil
}

// NewRefdataWarmupTask constructs an Asynq task.
func NewRefdataWarmupTask() *asynq.Task {
	return asynq.NewTask(TaskRefdataWarmup, nil)
}
