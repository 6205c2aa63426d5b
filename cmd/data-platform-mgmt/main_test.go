package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestParseExternalConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(context.Background(), io.NopCloser(strings.NewReader(configYaml)))
	is.NoErr(err)

	is.True(cfg.watchdog.Enabled)
	is.Equal(30*time.Minute, cfg.watchdog.Interval)
	is.Equal(48*time.Hour, cfg.watchdog.StaleAfter)
	is.Equal("default", cfg.watchdog.Workspace)

	is.Equal(1, len(cfg.notifications.Notifications))
	is.Equal("pagerduty", cfg.notifications.Notifications[0].ID)
	is.Equal("http://alert-bridge:8990", cfg.notifications.Notifications[0].Subscribers[0].Endpoint)
}

func TestParseExternalConfigFileKeepsDefaultsForMissingKeys(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(context.Background(), io.NopCloser(strings.NewReader("")))
	is.NoErr(err)

	is.True(cfg.watchdog.Enabled)
	is.Equal(15*time.Minute, cfg.watchdog.Interval)
	is.Equal(0, len(cfg.notifications.Notifications))
}

func TestNewCacheFallsBackToMemory(t *testing.T) {
	is := is.New(t)

	flags := defaultFlags()
	flags[cacheHost] = ""

	c := newCache(context.Background(), flags)

	stats := c.Stats(context.Background())
	is.True(stats.Connected)
	is.Equal(int64(0), stats.TotalKeys)
}

const configYaml string = `
watchdog:
  enabled: true
  interval: 30m
  staleAfter: 48h
  workspace: default

notifications:
  - id: pagerduty
    name: PagerDuty bridge
    type: com.dataspect.alert.created
    severities:
      - critical
      - high
    subscribers:
      - endpoint: http://alert-bridge:8990
`
