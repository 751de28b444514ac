package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scribe/internal/config"
	"scribe/internal/core"
	"scribe/internal/db"
	"scribe/internal/http/handler"
	"scribe/internal/http/handler/middleware"
	"scribe/internal/http/payload"
	"scribe/internal/http/server"
	"scribe/internal/repository"
	"scribe/internal/session"
	"scribe/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("scribe", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewBlogRepository(dbConn)

	// session store
	sessions := session.NewStore()

	// blog service
	blog := core.NewBlog(logger, repo, sessions)

	// handler
	blogHlr := handler.NewBlogHandler(
		logger,
		payload.Decoder{},
		blog,
		config.SessionCookieName)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, blogHlr.HandleRegister)
	mux.HandleFunc(handler.Login, blogHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, blogHlr.HandleLogout)
	mux.HandleFunc(handler.ListPosts, blogHlr.HandleListPosts)
	mux.HandleFunc(handler.GetPost, blogHlr.HandleGetPost)
	mux.HandleFunc(handler.CreatePost, blogHlr.HandleCreatePost)
	mux.HandleFunc(handler.UpdatePost, blogHlr.HandleUpdatePost)
	mux.HandleFunc(handler.DeletePost, blogHlr.HandleDeletePost)
	mux.HandleFunc(handler.Health, blogHlr.HandleHealth)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// Migrate runs the schema migration as an explicit deploy-time step. It only
// adds missing tables and columns and never drops existing data.
func Migrate() error {
	logger := log.NewZapLogger("scribe-migrate", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewBlogRepository(dbConn)
	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	logger.Infow("schema migration complete")
	return nil
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
