package main

import (
	"context"
	"fmt"

	"github.com/MikeRez0/orderingest/internal/adapter/cache"
	"github.com/MikeRez0/orderingest/internal/adapter/client/workflow"
	"github.com/MikeRez0/orderingest/internal/adapter/config"
	"github.com/MikeRez0/orderingest/internal/adapter/handler/http"
	"github.com/MikeRez0/orderingest/internal/adapter/logger"
	"github.com/MikeRez0/orderingest/internal/adapter/storage"
	"github.com/MikeRez0/orderingest/internal/adapter/storage/repository"
	"github.com/MikeRez0/orderingest/internal/core/port"
	"github.com/MikeRez0/orderingest/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}

	workflowClient, err := workflow.NewWorkflowClient(conf.Workflow, log.Named("Workflow"))
	if err != nil {
		log.Error("workflow client creating error", zap.Error(err))
		return
	}

	var reportCache port.Cache
	if conf.Redis.Addr != "" {
		reportCache = cache.NewRedisCache(conf.Redis)
	}

	svc, err := service.NewService(repo, workflowClient, reportCache, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	workflowClient.StartTriggerWorkers(ctx, svc, conf.Workflow.Workers)

	// Pick up orders persisted before a previous shutdown but never triggered.
	err = workflow.RecallOrders(ctx, repo, workflowClient)
	if err != nil {
		log.Error("order recall error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	reportHandler, err := http.NewReportHandler(svc, log.Named("Report handler"))
	if err != nil {
		log.Error("report handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, reportHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
