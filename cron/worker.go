package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"stayfinder/config"
	historyRepo "stayfinder/database/repository/history"
)

const TypeHistoryPrune = "history:prune"

// InitRetentionWorker runs the history retention worker in background.
// It does nothing unless HISTORY_RETENTION_DAYS is set above zero.
func InitRetentionWorker(repo historyRepo.HistoryRepository) {
	retentionDays := config.AppConfig.HistoryRetentionDays
	if retentionDays <= 0 {
		return
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeHistoryPrune, handlePruneTask(repo, retentionDays))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@daily", asynq.NewTask(TypeHistoryPrune, nil)); err != nil {
		log.Printf("[RetentionWorker] failed to register prune schedule: %v", err)
		return
	}

	go func() {
		log.Println("[RetentionWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[RetentionWorker] worker stopped: %v", err)
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[RetentionWorker] scheduler stopped: %v", err)
		}
	}()
}

func handlePruneTask(repo historyRepo.HistoryRepository, retentionDays int) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		pruned, err := repo.PruneBefore(ctx, cutoff)
		if err != nil {
			log.Printf("[RetentionWorker] prune failed: %v", err)
			return err
		}
		if pruned > 0 {
			log.Printf("[RetentionWorker] pruned %d history entries older than %s", pruned, cutoff.Format("2006-01-02"))
		}
		return nil
	}
}
