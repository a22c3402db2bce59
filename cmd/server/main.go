package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/Pawankumarhr/prime-trade/api/handler"
	"github.com/Pawankumarhr/prime-trade/internal/config"
	"github.com/Pawankumarhr/prime-trade/internal/lifecycle"
	"github.com/Pawankumarhr/prime-trade/internal/middleware"
	"github.com/Pawankumarhr/prime-trade/internal/monitor"
	"github.com/Pawankumarhr/prime-trade/internal/router"
	"github.com/Pawankumarhr/prime-trade/pkg/httpcontext"
	"github.com/Pawankumarhr/prime-trade/pkg/logger"
	"github.com/Pawankumarhr/prime-trade/pkg/token"
	"github.com/Pawankumarhr/prime-trade/repository/supabase"
	analyticsUC "github.com/Pawankumarhr/prime-trade/usecase/analytics"
	authUC "github.com/Pawankumarhr/prime-trade/usecase/auth"
	insightUC "github.com/Pawankumarhr/prime-trade/usecase/insight"
	taskUC "github.com/Pawankumarhr/prime-trade/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store := supabase.NewClient(cfg.Store.URL, cfg.Store.APIKey, zapLogger)

	mon := monitor.New(store, cfg.Store.ProbeInterval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := supabase.NewUserRepository(store)
	taskRepo := supabase.NewTaskRepository(store)

	codec := token.New(cfg.JWT.Secret, cfg.JWT.SessionTTL)

	authUseCase := authUC.New(userRepo, codec, zapLogger)
	taskUseCase := taskUC.New(taskRepo, zapLogger)
	analyticsUseCase := analyticsUC.New(taskRepo, zapLogger)
	insightUseCase := insightUC.New(taskRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Task:      apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Analytics: apiHandler.NewAnalyticsHandler(analyticsUseCase, insightUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.Auth(codec, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
