package cron

import (
	"context"
	"log"
	"time"

	"barkbook/config"
	"barkbook/services/scheduling"

	"github.com/hibiken/asynq"
)

const TypeAuditRun = "audit:run"

// InitAuditWorker runs the async worker and its periodic scheduler in the
// background. The scheduler enqueues the recurring-series audit on the
// configured cron spec; the worker executes it. The audit is idempotent, so
// overlapping or repeated runs are harmless.
func InitAuditWorker(svc scheduling.SchedulingService, zone *time.Location) {
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
	mux.HandleFunc(TypeAuditRun, handleAuditTask(svc))

	go func() {
		log.Println("[AuditWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AuditWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AuditWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: zone})
	if _, err := scheduler.Register(config.AppConfig.AuditCronSpec, asynq.NewTask(TypeAuditRun, nil)); err != nil {
		log.Fatalf("[AuditWorker] failed to register audit schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[AuditWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleAuditTask(svc scheduling.SchedulingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		report, err := svc.RunAudit(ctx)
		if err != nil {
			log.Printf("[AuditWorker] audit run failed: %v", err)
			return err
		}
		log.Printf("[AuditWorker] audit run complete: created=%d deleted=%d", report.CreatedCount, report.DeletedCount)
		return nil
	}
}
