package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/outofforest/slist"
	"github.com/outofforest/slist/check"
)

func main() {
	config, logConfig, err := parseFlags(os.Args[1:])
	log := logger.New(logConfig)

	switch {
	case errors.Is(err, pflag.ErrHelp):
		return
	case err != nil:
		log.Error("Invalid arguments", zap.Error(err))
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(logger.WithLogger(context.Background(), log), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, config)
	cancel()

	if err != nil {
		log.Error("Check failed", zap.Error(err))
		os.Exit(1)
	}
}

// parseFlags returns the checker and logger configuration. Logger configuration is returned
// even on error so the error can be reported.
func parseFlags(args []string) (check.Config, logger.Config, error) {
	config := check.DefaultConfig

	flags := pflag.NewFlagSet("slist-check", pflag.ContinueOnError)
	flags.IntVar(&config.Workers, "workers", config.Workers, "Number of scenarios executed concurrently")
	flags.Uint64Var(&config.Scenarios, "scenarios", config.Scenarios, "Number of scenarios to execute")
	flags.IntVar(&config.Ops, "ops", config.Ops, "Number of random operations in each scenario")
	flags.IntVar(&config.MaxValue, "max-value", config.MaxValue, "Exclusive upper bound of generated values")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Seed of the first scenario")
	logger.AddFlags(logger.DefaultConfig, flags)

	if err := flags.Parse(args); err != nil {
		return check.Config{}, logger.DefaultConfig, err
	}

	logConfig, err := loggerConfig(flags)
	if err != nil {
		return check.Config{}, logger.DefaultConfig, err
	}
	if flags.NArg() > 0 {
		return check.Config{}, logConfig, errors.Errorf("unexpected arguments: %v", flags.Args())
	}
	return config, logConfig, config.Validate()
}

func loggerConfig(flags *pflag.FlagSet) (logger.Config, error) {
	config := logger.DefaultConfig

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return logger.Config{}, errors.WithStack(err)
	}
	config.Verbose = verbose
	config.Format = logger.Format(flags.Lookup("log-format").Value.String())

	return config, nil
}

func run(ctx context.Context, config check.Config) error {
	if err := demo(ctx); err != nil {
		return err
	}

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		resultCh := make(chan check.Result)

		spawn("checker", parallel.Continue, func(ctx context.Context) error {
			return check.Run(ctx, config, resultCh)
		})
		spawn("collector", parallel.Continue, func(ctx context.Context) error {
			return collect(ctx, resultCh)
		})

		return nil
	})
}

func demo(ctx context.Context) error {
	log := logger.Get(ctx)

	l := slist.New[int]()
	for _, v := range []int{10, 30, 5, 20} {
		l.Add(v)
	}
	log.Info("List built", zap.Stringer("list", l), zap.Int("size", l.Size()))

	sorted := l.Copy()
	sorted.Sort()
	log.Info("List sorted", zap.Stringer("original", l), zap.Stringer("sorted", sorted))

	if err := l.Remove(1); err != nil {
		return err
	}
	v, err := l.Get(1)
	if err != nil {
		return err
	}
	log.Info("Element removed", zap.Stringer("list", l), zap.Int("get(1)", v), zap.Int("find(100)", l.Find(100)))

	if _, err := l.Get(l.Size()); !errors.Is(err, slist.ErrIndexOutOfBounds) {
		return errors.Errorf("out of bounds access not reported, got %v", err)
	}
	return nil
}

func collect(ctx context.Context, resultCh <-chan check.Result) error {
	log := logger.Get(ctx)

	var errs error
	var passed, failed uint64
	for result := range resultCh {
		if result.Err == nil {
			passed++
			continue
		}

		failed++
		log.Error("Scenario failed",
			zap.Uint64("scenario", result.Scenario),
			zap.Int64("seed", result.Seed),
			zap.Error(result.Err))
		errs = multierr.Append(errs, errors.Wrapf(result.Err, "scenario %d (seed %d)", result.Scenario, result.Seed))
	}

	log.Info("Check finished", zap.Uint64("passed", passed), zap.Uint64("failed", failed))
	return errs
}
