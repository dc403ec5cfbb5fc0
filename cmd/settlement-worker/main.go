package main

import (
	"context"
	"log"
	"os"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal"
	"github.com/DrGermanius/Gophercash/internal/settlement"
)

func main() {
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync()

	cfg, err := internal.NewConfig()
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	repository, err := internal.NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	// settlement never evaluates credit or publishes status changes
	service := internal.NewService(repository, nil, nil, cfg, sugaredLogger)

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.TemporalNamespace,
		Logger:    settlement.NewZapLogger(sugaredLogger),
	})
	if err != nil {
		sugaredLogger.Fatalf("Unable to create Temporal client: %s", err.Error())
	}
	defer c.Close()

	w := worker.New(c, cfg.SettlementTaskQueue, worker.Options{
		Identity:                           "settlement-worker-" + hostname(),
		MaxConcurrentActivityExecutionSize: 1,
	})

	w.RegisterWorkflow(settlement.SweepWorkflow)
	w.RegisterActivity(&settlement.Activities{Reconciler: service})

	if cfg.SettlementCron != "" {
		we, err := c.ExecuteWorkflow(context.Background(), client.StartWorkflowOptions{
			ID:           settlement.WorkflowID,
			TaskQueue:    cfg.SettlementTaskQueue,
			CronSchedule: cfg.SettlementCron,
		}, settlement.SweepWorkflow)
		if err != nil {
			sugaredLogger.Fatalf("Unable to schedule settlement sweep: %s", err.Error())
		}
		sugaredLogger.Infow("Settlement sweep scheduled", "workflowID", we.GetID(), "runID", we.GetRunID(), "cron", cfg.SettlementCron)
	}

	sugaredLogger.Infow("Worker starting", "taskQueue", cfg.SettlementTaskQueue)
	if err = w.Run(worker.InterruptCh()); err != nil {
		sugaredLogger.Fatalf("Unable to start worker: %s", err.Error())
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
