package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/config"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/extract"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/ports"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/usecase"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/infrastructure/envelope"
	natsqueue "github.com/Joooooonha/Intership-Assignment-RECO/internal/infrastructure/queue/nats"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/infrastructure/resilience"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Parser  ports.CertificateParser
	Metrics *metrics.ServerMetrics

	closeFn func()
}

func New(cfg config.Config) (*App, error) {
	reader, err := envelope.NewReader()
	if err != nil {
		return nil, fmt.Errorf("init envelope reader: %w", err)
	}

	var publisher ports.EventPublisher
	var closeFn func()
	if cfg.NATSEnabled {
		pub, err := natsqueue.NewPublisher(cfg.NATSURL, cfg.NATSSubject, natsqueue.Options{
			Executor: resilience.NewExecutor(resilience.DefaultConfig()),
		})
		if err != nil {
			return nil, fmt.Errorf("init event publisher: %w", err)
		}
		publisher = pub
		closeFn = pub.Close
	}

	extractor := extract.New(slog.Default())
	parser := usecase.NewParseCertificateUseCase(reader, extractor, publisher, slog.Default())

	return &App{
		Config:  cfg,
		Parser:  parser,
		Metrics: metrics.NewServerMetrics("weighbridge-parser"),
		closeFn: closeFn,
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
