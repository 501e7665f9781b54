package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"jobocr/services/processing/internal/bootstrap"
	"jobocr/services/processing/internal/config"
	"jobocr/services/processing/internal/httpapi"
	"jobocr/services/processing/internal/processor"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newHandler(cfg *config.Config, p *processor.JobProcessor, batch *processor.BatchExtractor) *httpapi.Handler {
	return httpapi.NewHandler(p, batch, cfg.BatchSize)
}

// The API extracts on demand and does not persist offers.
func noStore() processor.OfferStore {
	return nil
}

func newServer(lc fx.Lifecycle, cfg *config.Config, h *httpapi.Handler, logger *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(h, logger),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.ProcessingTimeout + 5*time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Extraction API listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

func main() {
	app := fx.New(
		bootstrap.Core("extraction-api"),
		fx.Provide(
			noStore,
			newHandler,
			newServer,
		),
		fx.Invoke(func(*http.Server) {}),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		log.Fatal(err)
	}
}
