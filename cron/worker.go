package cron

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sud2610/set-u-free-sub000/services/provider"

	"github.com/hibiken/asynq"
	robfigCron "github.com/robfig/cron/v3"
)

// InitRatingWorker runs the async worker in background. It drains the
// rating:recompute queue and, via the nightly sweep, reconciles every
// provider's stored rating aggregate against the reviews collection.
func InitRatingWorker(providerSvc provider.ProviderService) {
	srv := asynq.NewServer(
		redisClientOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRatingRecompute, handleRatingRecompute(providerSvc))

	go func() {
		log.Println("[RatingWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[RatingWorker] failed to start worker: %v", err)
		}
	}()

	startNightlySweep(providerSvc)
}

func handleRatingRecompute(providerSvc provider.ProviderService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RatingRecomputePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RatingWorker] invalid payload: %v", err)
			return err
		}
		if err := providerSvc.RecomputeRating(p.ProviderID); err != nil {
			log.Printf("[RatingWorker] recompute failed for provider %s: %v", p.ProviderID, err)
			return err
		}
		return nil
	}
}

// startNightlySweep enqueues a recompute for every provider at 03:00 so any
// enqueue miss or concurrent-write drift self-heals within a day.
func startNightlySweep(providerSvc provider.ProviderService) {
	c := robfigCron.New()
	enqueuer := NewEnqueuer()

	_, err := c.AddFunc("0 3 * * *", func() {
		providers, err := providerSvc.GetAllProviders()
		if err != nil {
			log.Printf("[RatingSweep] failed to list providers: %v", err)
			return
		}
		for _, p := range providers {
			if err := enqueuer.EnqueueRatingRecompute(p.ID); err != nil {
				log.Printf("[RatingSweep] failed to enqueue provider %s: %v", p.ID, err)
			}
		}
		log.Printf("[RatingSweep] enqueued recompute for %d providers", len(providers))
	})
	if err != nil {
		log.Fatalf("[RatingSweep] failed to schedule sweep: %v", err)
	}
	c.Start()
}
