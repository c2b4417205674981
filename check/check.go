package check

import (
	"context"
	"fmt"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Result is the outcome of single scenario.
type Result struct {
	Scenario uint64
	Seed     int64
	Err      error
}

type task struct {
	Scenario uint64
	Seed     int64
}

// Run executes scenarios and reports their results to resultCh.
func Run(ctx context.Context, config Config, resultCh chan<- Result) error {
	defer close(resultCh)

	if err := config.Validate(); err != nil {
		return err
	}

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		availableWorkerCh := make(chan struct{}, config.Workers)
		for i := 0; i < config.Workers; i++ {
			availableWorkerCh <- struct{}{}
		}
		taskCh := make(chan task, config.Workers)

		spawn("taskDistributor", parallel.Exit, func(ctx context.Context) error {
			return taskDistributor(ctx, config, taskCh, availableWorkerCh)
		})
		for i := 0; i < config.Workers; i++ {
			spawn(fmt.Sprintf("worker-%d", i), parallel.Continue, func(ctx context.Context) error {
				return worker(ctx, config, taskCh, resultCh, availableWorkerCh)
			})
		}

		return nil
	})
	if err != nil {
		return err
	}

	return errors.WithStack(ctx.Err())
}

func taskDistributor(
	ctx context.Context,
	config Config,
	taskCh chan<- task,
	availableWorkerCh chan struct{},
) error {
	defer func() {
		close(taskCh)

		// Waiting until all the workers give their tokens back, so all the results are reported
		// before the group is shut down.
		for i := 0; i < config.Workers; i++ {
			<-availableWorkerCh
		}
	}()

	for scenario := uint64(0); scenario < config.Scenarios; scenario++ {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-availableWorkerCh:
		}

		taskCh <- task{
			Scenario: scenario,
			Seed:     config.Seed + int64(scenario),
		}
	}

	return nil
}

func worker(
	ctx context.Context,
	config Config,
	taskCh <-chan task,
	resultCh chan<- Result,
	availableWorkerCh chan<- struct{},
) error {
	log := logger.Get(ctx)

	for task := range taskCh {
		var errScenario error
		func() {
			defer func() {
				if r := recover(); r != nil {
					if err, ok := r.(error); ok {
						errScenario = errors.WithStack(err)
					} else {
						errScenario = errors.Errorf("panic: %s", r)
					}
				}
			}()
			errScenario = runScenario(ctx, config, task.Seed)
		}()

		log.Debug("Scenario finished",
			zap.Uint64("scenario", task.Scenario),
			zap.Int64("seed", task.Seed),
			zap.Bool("passed", errScenario == nil))

		resultCh <- Result{
			Scenario: task.Scenario,
			Seed:     task.Seed,
			Err:      errScenario,
		}
		availableWorkerCh <- struct{}{}
	}

	return nil
}
