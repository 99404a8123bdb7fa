package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/edgesync"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/events"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/hubsync"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/nodes"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/telemetry"
	"github.com/diwise/iot-edge-sync/internal/pkg/application/webevents"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/files"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/keyvalue"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/internal/pkg/presentation/api"
)

const serviceName string = "iot-edge-sync"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	enableTracing

	policiesFile
	notificationsFile
	firmwareDir

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		enableTracing: "true",

		policiesFile:      "/opt/diwise/config/authz.rego",
		notificationsFile: "/opt/diwise/config/notifications.yaml",
		firmwareDir:       "/opt/diwise/firmwares",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "diwise",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	err = stream.Initialize(ctx, s.Pool())
	exitIf(err, logger, "could not initialize stream storage")

	err = keyvalue.Initialize(ctx, s.Pool())
	exitIf(err, logger, "could not initialize key value storage")

	queue := stream.New(s.Pool())
	kv := keyvalue.New(s.Pool())

	firmwares, err := files.New(flags[firmwareDir])
	exitIf(err, logger, "could not open firmware directory")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	err = messenger.RegisterTopicMessageHandler(telemetry.DatapointTopic, telemetry.DatapointReceivedHandler(queue))
	exitIf(err, logger, "failed to register datapoint handler")

	sender := newEventSender(ctx, logger, flags[notificationsFile])

	we := webevents.New()
	defer we.Shutdown()

	sync := hubsync.New(s, queue, kv, firmwares, we)
	registry := nodes.New(s, sync)

	es := edgesync.New(s, queue, kv, firmwares, messenger, sender)
	es.Start(ctx)
	defer es.Stop(context.Background())

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, logger, sync, registry, we)
	exitIf(err, logger, "failed to register handlers")

	apiPort := ":" + flags[servicePort]
	logger.Info("starting to listen for incoming connections", "port", apiPort)

	server := &http.Server{Addr: flags[listenAddress] + apiPort, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		exitIf(err, logger, "failed to start request router")
	}
}

func newEventSender(ctx context.Context, logger *slog.Logger, configFile string) events.EventSender {
	cfgFile, err := os.Open(configFile)
	if err != nil {
		logger.Info("no notifications config found, cloud events are disabled", "file", configFile)
		return events.New(serviceName, nil)
	}
	defer cfgFile.Close()

	cfg, err := events.LoadConfiguration(cfgFile)
	exitIf(err, logger, "could not parse notifications config")

	return events.New(serviceName, cfg)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[enableTracing] = envOrDef(ctx, "ENABLE_TRACING", flags[enableTracing])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])
	flags[firmwareDir] = envOrDef(ctx, "FIRMWARE_DIR", flags[firmwareDir])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("notifications", "cloud events subscriber configuration", apply(notificationsFile))
	flag.Func("firmwares", "directory where firmware images are stored", apply(firmwareDir))
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
