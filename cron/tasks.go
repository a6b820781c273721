package cron

import (
	"encoding/json"
	"fmt"

	"github.com/sud2610/set-u-free-sub000/config"

	"github.com/hibiken/asynq"
)

const TypeRatingRecompute = "rating:recompute"

// RatingRecomputePayload identifies the provider whose denormalized rating
// aggregate needs recomputing.
type RatingRecomputePayload struct {
	ProviderID string `json:"providerId"`
}

func redisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// Enqueuer submits rating-recompute tasks. It satisfies the review
// service's RatingRecomputer interface.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates an Enqueuer over the configured task-queue Redis DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisClientOpt())}
}

// EnqueueRatingRecompute schedules a recompute for one provider.
func (e *Enqueuer) EnqueueRatingRecompute(providerID string) error {
	payload, err := json.Marshal(RatingRecomputePayload{ProviderID: providerID})
	if err != nil {
		return fmt.Errorf("failed to marshal recompute payload: %w", err)
	}
	task := asynq.NewTask(TypeRatingRecompute, payload)
	if _, err := e.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue recompute task: %w", err)
	}
	return nil
}
