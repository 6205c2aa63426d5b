package watchdog

import (
	"context"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/alerts"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/catalog"
	"github.com/dataspect/data-platform-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("data-platform-mgmt/watchdog")

// Watchdog periodically sweeps the platform for tables that stopped
// refreshing and for snoozed alerts whose snooze window has passed. Stale
// tables are announced on the message bus, the alert service turns them
// into freshness alerts.
type Watchdog interface {
	Start(ctx context.Context)
	Stop()
}

type watchdogImpl struct {
	alerts    alerts.AlertService
	catalog   catalog.CatalogService
	messenger messaging.MsgContext
	cfg       Config

	done chan struct{}
}

func New(a alerts.AlertService, c catalog.CatalogService, m messaging.MsgContext, cfg Config) Watchdog {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}
	if cfg.Workspace == "" {
		cfg.Workspace = DefaultWorkspace
	}

	return &watchdogImpl{
		alerts:    a,
		catalog:   c,
		messenger: m,
		cfg:       cfg,
		done:      make(chan struct{}),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop() {
	close(w.done)
}

func (w *watchdogImpl) run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-w.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *watchdogImpl) sweep(ctx context.Context) {
	var err error
	ctx, span := tracer.Start(ctx, "watchdog-sweep")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	reopened, err := w.alerts.ReopenExpiredSnoozes(ctx)
	if err != nil {
		log.Error("could not reopen snoozed alerts", "err", err.Error())
	} else if reopened > 0 {
		log.Info("reopened snoozed alerts", "count", reopened)
	}

	assets, err := w.catalog.Assets(ctx)
	if err != nil {
		log.Error("could not list assets", "err", err.Error())
		return
	}

	now := time.Now().UTC()

	for _, ds := range assets.Datasets {
		stale := lo.Filter(ds.Assets, func(a types.AssetMetadata, _ int) bool {
			return !a.ModifiedAt.IsZero() && now.Sub(a.ModifiedAt) > w.cfg.StaleAfter
		})

		for _, a := range stale {
			err = w.messenger.PublishOnTopic(ctx, &types.TableNotFreshMessage{
				ProjectID:    a.ProjectID,
				DatasetID:    a.DatasetID,
				TableID:      a.TableID,
				LastModified: a.ModifiedAt,
				StaleFor:     now.Sub(a.ModifiedAt).Round(time.Minute).String(),
				Workspace:    w.cfg.Workspace,
				Timestamp:    now,
			})
			if err != nil {
				log.Error("could not publish freshness warning", "table_id", a.TableID, "err", err.Error())
			}
		}
	}
}
