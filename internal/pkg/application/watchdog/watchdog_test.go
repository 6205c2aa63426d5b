package watchdog

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/alerts"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/catalog"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestSweepPublishesStaleTables(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	now := time.Now().UTC()

	a := &alerts.AlertServiceMock{
		ReopenExpiredSnoozesFunc: func(ctx context.Context) (int, error) {
			return 0, nil
		},
	}
	c := &catalog.CatalogServiceMock{
		AssetsFunc: func(ctx context.Context) (types.AssetCatalog, error) {
			return types.AssetCatalog{
				Datasets: []types.DatasetAssets{
					{
						Dataset: types.Dataset{ID: "analytics", ProjectID: "demo"},
						Assets: []types.AssetMetadata{
							{ProjectID: "demo", DatasetID: "analytics", TableID: "orders", ModifiedAt: now.Add(-40 * time.Hour)},
							{ProjectID: "demo", DatasetID: "analytics", TableID: "customers", ModifiedAt: now.Add(-2 * time.Hour)},
						},
					},
				},
			}, nil
		},
	}

	mu := sync.Mutex{}
	published := []types.TableNotFreshMessage{}

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			is.Equal("watchdog.tableNotFresh", message.TopicName())

			msg := types.TableNotFreshMessage{}
			err := json.Unmarshal(message.Body(), &msg)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				published = append(published, msg)
			}
			return nil
		},
	}

	w := &watchdogImpl{
		alerts:    a,
		catalog:   c,
		messenger: m,
		cfg:       DefaultConfig(),
		done:      make(chan struct{}),
	}

	w.sweep(ctx)

	mu.Lock()
	defer mu.Unlock()
	is.Equal(1, len(published))
	is.Equal("orders", published[0].TableID)
	is.Equal("default", published[0].Workspace)
	is.True(strings.HasSuffix(published[0].StaleFor, "h0m0s"))
}

func TestSweepReopensExpiredSnoozes(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	a := &alerts.AlertServiceMock{
		ReopenExpiredSnoozesFunc: func(ctx context.Context) (int, error) {
			return 3, nil
		},
	}
	c := &catalog.CatalogServiceMock{
		AssetsFunc: func(ctx context.Context) (types.AssetCatalog, error) {
			return types.AssetCatalog{}, nil
		},
	}
	m := &messaging.MsgContextMock{}

	w := &watchdogImpl{
		alerts:    a,
		catalog:   c,
		messenger: m,
		cfg:       DefaultConfig(),
		done:      make(chan struct{}),
	}

	w.sweep(ctx)

	is.Equal(1, len(a.ReopenExpiredSnoozesCalls()))
}

func TestStartSweepsImmediately(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	swept := make(chan struct{}, 1)

	a := &alerts.AlertServiceMock{
		ReopenExpiredSnoozesFunc: func(ctx context.Context) (int, error) {
			return 0, nil
		},
	}
	c := &catalog.CatalogServiceMock{
		AssetsFunc: func(ctx context.Context) (types.AssetCatalog, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return types.AssetCatalog{}, nil
		},
	}

	w := New(a, c, &messaging.MsgContextMock{}, Config{Enabled: true, Interval: time.Hour})
	w.Start(ctx)
	defer w.Stop()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("watchdog did not sweep on start")
	}

	is.True(len(c.AssetsCalls()) >= 1)
}

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	config := strings.NewReader(`
watchdog:
  enabled: false
  interval: 5m
  staleAfter: 48h
  workspace: marketing
`)

	cfg, err := LoadConfiguration(config)

	is.NoErr(err)
	is.Equal(false, cfg.Enabled)
	is.Equal(5*time.Minute, cfg.Interval)
	is.Equal(48*time.Hour, cfg.StaleAfter)
	is.Equal("marketing", cfg.Workspace)
}

func TestLoadConfigurationDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(strings.NewReader(""))

	is.NoErr(err)
	is.Equal(true, cfg.Enabled)
	is.Equal(DefaultInterval, cfg.Interval)
	is.Equal(DefaultStaleAfter, cfg.StaleAfter)
	is.Equal(DefaultWorkspace, cfg.Workspace)
}
