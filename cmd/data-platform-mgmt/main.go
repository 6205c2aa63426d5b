package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/alerts"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/analysis"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/catalog"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/explorations"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/lineage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/notifications"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/watchdog"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/webevents"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/router"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	k8shandlers "github.com/diwise/service-chassis/pkg/infrastructure/net/http/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
)

const serviceName string = "data-platform-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	controlPort
	enableTracing

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	cacheHost
	cachePort
	cachePassword

	warehouseURL
	warehouseToken
)

var (
	webserver  = servicerunner.WithHTTPServeMux[appConfig]
	listen     = servicerunner.WithListenAddr[appConfig]
	port       = servicerunner.WithPort[appConfig]
	pprof      = servicerunner.WithPPROF[appConfig]
	liveness   = servicerunner.WithK8SLivenessProbe[appConfig]
	readiness  = servicerunner.WithK8SReadinessProbes[appConfig]
	tracing    = servicerunner.WithTracing[appConfig]
	muxinit    = servicerunner.OnMuxInit[appConfig]
	oninit     = servicerunner.OnInit[appConfig]
	onstarting = servicerunner.OnStarting[appConfig]
	onshutdown = servicerunner.OnShutdown[appConfig]
)

type appConfig struct {
	watchdog      watchdog.Config
	notifications *notifications.Config
}

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		controlPort:   "8000",
		enableTracing: "true",

		policiesFile:      "/opt/dataspect/config/authz.rego",
		configurationFile: "/opt/dataspect/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "dataspect",
		dbSSLMode:  "disable",

		cacheHost:     "",
		cachePort:     "6379",
		cachePassword: "",

		warehouseURL:   "http://localhost:9050",
		warehouseToken: "",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfg, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	appCfg, err := parseExternalConfigFile(ctx, cfg)
	exitIf(err, logger, "could not parse configuration file")

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")

	runner, err := initialize(ctx, flags, appCfg, policies)
	exitIf(err, logger, "failed to initialize service runner")

	err = runner.Run(ctx)
	exitIf(err, logger, "failed to start service runner")
}

func initialize(ctx context.Context, flags flagMap, cfg *appConfig, policies io.ReadCloser) (servicerunner.Runner[appConfig], error) {
	defer policies.Close()

	log := logging.GetFromContext(ctx)

	probes := map[string]k8shandlers.ServiceProber{
		"rabbitmq": func(context.Context) (string, error) { return "ok", nil },
		"postgres": func(context.Context) (string, error) { return "ok", nil },
		"redis":    func(context.Context) (string, error) { return "ok", nil },
	}

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, log, "could not create or connect to database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, log))
	exitIf(err, log, "failed to init messenger")

	c := newCache(ctx, flags)
	wh := warehouse.New(flags[warehouseURL], flags[warehouseToken])

	var alertSvc alerts.AlertService
	var lineageSvc lineage.LineageService
	var catalogSvc catalog.CatalogService
	var analysisSvc analysis.AnalysisService
	var explorationSvc explorations.ExplorationService
	var we webevents.WebEvents
	var wd watchdog.Watchdog

	_, runner := servicerunner.New(ctx, *cfg,
		webserver("control", listen(flags[listenAddress]), port(flags[controlPort]),
			pprof(), liveness(func() error { return nil }), readiness(probes),
		),
		webserver("public", listen(flags[listenAddress]), port(flags[servicePort]), tracing(flags[enableTracing] == "true"),
			muxinit(func(ctx context.Context, identifier string, port string, svcCfg *appConfig, handler *http.ServeMux) error {
				mux, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, api.Services{
					Alerts:       alertSvc,
					Lineage:      lineageSvc,
					Analysis:     analysisSvc,
					Catalog:      catalogSvc,
					Explorations: explorationSvc,
					Warehouse:    wh,
					Cache:        c,
					WebEvents:    we,
				})
				if err != nil {
					return err
				}

				handler.Handle("/", mux)

				return nil
			}),
		),
		oninit(func(ctx context.Context, svcCfg *appConfig) error {
			log.Debug("initializing servicerunner")

			alertSvc = alerts.New(s, messenger)
			lineageSvc = lineage.New(wh, c)
			catalogSvc = catalog.New(wh, c)
			analysisSvc = analysis.New(lineageSvc, wh)
			explorationSvc = explorations.New(s, wh, c)

			we = webevents.New(messenger)
			notifications.New(svcCfg.notifications, messenger)
			wd = watchdog.New(alertSvc, catalogSvc, messenger, svcCfg.watchdog)

			return nil
		}),
		onstarting(func(ctx context.Context, svcCfg *appConfig) (err error) {
			log.Debug("starting servicerunner")

			err = s.Initialize(ctx)
			if err != nil {
				return
			}

			messenger.Start()

			if svcCfg.watchdog.Enabled {
				wd.Start(ctx)
			}

			return nil
		}),
		onshutdown(func(ctx context.Context, svcCfg *appConfig) error {
			log.Debug("shutdown servicerunner")

			if svcCfg.watchdog.Enabled {
				wd.Stop()
			}

			we.Shutdown()
			messenger.Close()
			s.Close()

			return c.Close()
		}),
	)

	return runner, nil
}

func newCache(ctx context.Context, flags flagMap) cache.Cache {
	log := logging.GetFromContext(ctx)

	if flags[cacheHost] == "" {
		log.Warn("no redis host configured, using in memory cache")
		return cache.NewInMemory()
	}

	c, err := cache.New(ctx, cache.NewConfig(flags[cacheHost], flags[cachePort], flags[cachePassword]))
	if err != nil {
		log.Error("failed to connect to redis, falling back to in memory cache", "err", err.Error())
		return cache.NewInMemory()
	}

	return c
}

func parseExternalConfigFile(_ context.Context, cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	wdCfg, err := watchdog.LoadConfiguration(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	notifCfg, err := notifications.LoadConfiguration(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	return &appConfig{
		watchdog:      wdCfg,
		notifications: notifCfg,
	}, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[controlPort] = envOrDef(ctx, "CONTROL_PORT", flags[controlPort])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[cacheHost] = envOrDef(ctx, "REDIS_HOST", flags[cacheHost])
	flags[cachePort] = envOrDef(ctx, "REDIS_PORT", flags[cachePort])
	flags[cachePassword] = envOrDef(ctx, "REDIS_PASSWORD", flags[cachePassword])

	flags[warehouseURL] = envOrDef(ctx, "WAREHOUSE_URL", flags[warehouseURL])
	flags[warehouseToken] = envOrDef(ctx, "WAREHOUSE_TOKEN", flags[warehouseToken])

	flags[enableTracing] = envOrDef(ctx, "ENABLE_TRACING", flags[enableTracing])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
