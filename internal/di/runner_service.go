package di

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/omarluq/curryhoward/internal/runner"
)

// RunnerService runs the selected exercises with the current configuration.
type RunnerService struct {
	config *ConfigService
	logger *LoggerService
	suite  *SuiteService
}

// NewRunner creates the runner service.
func NewRunner(i do.Injector) (*RunnerService, error) {
	return &RunnerService{
		config: do.MustInvoke[*ConfigService](i),
		logger: do.MustInvoke[*LoggerService](i),
		suite:  do.MustInvoke[*SuiteService](i),
	}, nil
}

// Run reads the configuration once and runs the selection it describes.
func (r *RunnerService) Run(ctx context.Context) (*runner.Report, error) {
	cfg := r.config.Get()
	run := runner.New(*r.logger.Logger, runner.Options{FailFast: cfg.Suite.IsFailFast()})
	return run.Run(ctx, r.suite.Selected(cfg.Suite))
}
