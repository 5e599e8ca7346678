// Command streamdemo runs the canonical stream pipeline on the pull, push
// and staged engines and prints what each one emits.
//
//	streamdemo --engine staged --from 1 --to 5
//	staged: [2][4]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/demo"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/version"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to config.yml")
	envFile := fs.String("env-file", "", "path to a .env file")
	fs.String("engine", demo.EngineAll, "engines to run: pull, push, staged or all (comma-separated)")
	fs.Int("from", 1, "first input integer")
	fs.Int("to", 5, "last input integer")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Fprintln(stdout, appName, version.Get().String())
		return nil
	}

	cfg, err := loadConfig(fs, *configFile, *envFile)
	if err != nil {
		return err
	}

	logger.Init(&cfg.Logging)
	logger.RegisterDefaults("pull", "push", "staged", "demo")
	log := logger.WithComponent("main")

	metrics, shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	engines, err := demo.ParseEngines(cfg.Demo.Engine)
	if err != nil {
		return err
	}
	input := demo.Input(cfg.Demo.From, cfg.Demo.To)
	runner := demo.NewRunner(metrics, logger.Get("demo"))

	log.Info("running pipelines", logger.Fields(
		"engines", cfg.Demo.Engine,
		"from", cfg.Demo.From,
		"to", cfg.Demo.To,
		"version", version.Get().Version,
	))
	for _, engine := range engines {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := runner.Output(ctx, engine, input)
		if err != nil {
			return fmt.Errorf("%s: %w", engine, err)
		}
		fmt.Fprintf(stdout, "%s: %s\n", engine, out)
	}
	return nil
}

func loadConfig(fs *pflag.FlagSet, configFile, envFile string) (*AppConfig, error) {
	cfg := &AppConfig{}
	err := config.LoadConfig(appName, cfg,
		config.WithConfigFile(configFile),
		config.WithEnvFile(envFile),
		config.WithEnvPrefix(appName),
		config.WithFlags(map[string]*pflag.Flag{
			"demo.engine": fs.Lookup("engine"),
			"demo.from":   fs.Lookup("from"),
			"demo.to":     fs.Lookup("to"),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// initTelemetry starts the OTLP tracer and meter when enabled. The returned
// shutdown flushes both.
func initTelemetry(ctx context.Context, cfg *AppConfig) (*observability.Metrics, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Telemetry.Enabled {
		return nil, noop, nil
	}

	tcfg := observability.DefaultTracerConfig(cfg.Base.Name)
	tcfg.ServiceVersion = version.Get().Version
	tcfg.Environment = cfg.Base.Environment
	tcfg.Endpoint = cfg.Telemetry.Endpoint
	tcfg.Insecure = cfg.Telemetry.Insecure
	tcfg.SampleRate = cfg.Telemetry.SampleRate
	tp, err := observability.InitTracer(ctx, tcfg)
	if err != nil {
		return nil, noop, fmt.Errorf("init tracer: %w", err)
	}

	mcfg := observability.DefaultMeterConfig(cfg.Base.Name)
	mcfg.ServiceVersion = tcfg.ServiceVersion
	mcfg.Environment = tcfg.Environment
	mcfg.Endpoint = tcfg.Endpoint
	mcfg.Insecure = tcfg.Insecure
	mp, err := observability.InitMeter(ctx, &mcfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, noop, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := observability.NewMetrics(observability.Meter(cfg.Base.Name))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, noop, err
	}

	shutdown := func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}
	return metrics, shutdown, nil
}
