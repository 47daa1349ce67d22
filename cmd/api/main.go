package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skolathu-cds/smart-travel-consultant/internal/config"
	"github.com/skolathu-cds/smart-travel-consultant/internal/handler"
	"github.com/skolathu-cds/smart-travel-consultant/internal/model/travel"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/advisor"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/dialogue"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/intent"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	chatModel, err := cfg.AI.NewChatModel(ctx)
	if err != nil {
		log.Fatalf("failed to create chat model: %v", err)
	}

	classifier, err := intent.NewClassifier(ctx, chatModel)
	if err != nil {
		log.Fatalf("failed to initialize intent classifier: %v", err)
	}

	advisorSvc, err := advisor.NewService(ctx, chatModel)
	if err != nil {
		log.Fatalf("failed to initialize advisor service: %v", err)
	}

	// Every category is served by the shared LLM-backed advisor for now;
	// the map keeps the door open for dedicated providers per category.
	providers := make(map[travel.Category]dialogue.Provider, len(travel.Categories()))
	for _, category := range travel.Categories() {
		providers[category] = advisorSvc
	}

	store := session.NewStore()
	manager := dialogue.NewManager(classifier, providers, store, cfg.Dialogue.TurnTimeout)

	router := handler.NewRouter(store, manager)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Smart Travel Consultant listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
