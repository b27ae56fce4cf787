package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/geoquiz-backend/internal/config"
	"github.com/rocketscienceinc/geoquiz-backend/internal/countries"
	"github.com/rocketscienceinc/geoquiz-backend/internal/quiz"
	"github.com/rocketscienceinc/geoquiz-backend/internal/repository"
	"github.com/rocketscienceinc/geoquiz-backend/internal/repository/storage"
	"github.com/rocketscienceinc/geoquiz-backend/internal/service"
	"github.com/rocketscienceinc/geoquiz-backend/internal/usecase"
	"github.com/rocketscienceinc/geoquiz-backend/transport/rest"
	"github.com/rocketscienceinc/geoquiz-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	catalog, err := conf.GetCatalog()
	if err != nil {
		return fmt.Errorf("could not build country catalog: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage)
	quizRepo := repository.NewQuizRepository(redisStorage)
	countryCache := repository.NewCountryInfoCache(redisStorage, conf.Quiz.HintCacheTTL)

	countriesClient := countries.New(conf.CountriesAPI.BaseURL, conf.CountriesAPI.Timeout)

	playerService := service.NewPlayerService(playerRepo)
	quizService := service.NewQuizService(quizRepo, catalog)
	hintService := service.NewHintService(logger, countriesClient, countryCache)

	quizUseCase := usecase.NewQuizUseCase(logger, playerService, quizService, hintService, catalog, quiz.SharedRandom())

	// run HTTP server
	httpServer := rest.New(logger, quizUseCase, catalog)
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsServer := websocket.New(logger, quizUseCase)
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
