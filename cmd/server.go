package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"transactread/internal/config"
	"transactread/internal/core"
	"transactread/internal/db"
	"transactread/internal/etherscan"
	"transactread/internal/http/handler"
	"transactread/internal/http/handler/middleware"
	"transactread/internal/http/payload"
	"transactread/internal/http/server"
	"transactread/internal/openai"
	"transactread/internal/repository"
	"transactread/pkg/jwt"
	"transactread/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("transactread", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewDashboardRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// outbound clients, each with its own bounded timeout
	explorer := etherscan.NewClient(
		&http.Client{},
		config.EtherscanAPIURL,
		config.EtherscanAPIKey,
		config.ExplorerTimeout)

	summarizer := openai.NewClient(
		&http.Client{},
		config.OpenAIAPIURL,
		config.OpenAIAPIKey,
		config.OpenAIModel,
		config.SummaryTimeout)

	// dashboard service
	transactRead := core.NewTransactRead(
		logger,
		repo,
		jwtService,
		explorer,
		summarizer,
		core.Settings{
			MaxWalletsPerUser: config.MaxWalletsPerUser,
			TokenExpiration:   config.TokenExpiration,
		})

	// handler
	dashHlr := handler.NewDashboardHandler(
		logger,
		payload.Decoder{},
		transactRead)

	// middleware
	authMW := middleware.NewAuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes; everything except login sits behind bearer auth
	mux.HandleFunc(handler.WalletLogin, dashHlr.HandleWalletLogin)
	mux.Handle(handler.AddWallet, authMW.RequireAuth(http.HandlerFunc(dashHlr.HandleAddWallet)))
	mux.Handle(handler.ListWallets, authMW.RequireAuth(http.HandlerFunc(dashHlr.HandleListWallets)))
	mux.Handle(handler.WalletTransactions, authMW.RequireAuth(http.HandlerFunc(dashHlr.HandleWalletTransactions)))
	mux.Handle(handler.GetTransaction, authMW.RequireAuth(http.HandlerFunc(dashHlr.HandleGetTransaction)))
	mux.Handle(handler.SyncTransactions, authMW.RequireAuth(http.HandlerFunc(dashHlr.HandleSyncTransactions)))
	mux.Handle(handler.GenerateSummary, authMW.RequireAuth(http.HandlerFunc(dashHlr.HandleGenerateSummary)))
	mux.Handle(handler.ClearTransactions, authMW.RequireAuth(http.HandlerFunc(dashHlr.HandleClearTransactions)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
