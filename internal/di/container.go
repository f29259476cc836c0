// Package di provides dependency injection using samber/do v2.
// It creates and configures the DI container with all service providers.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// ConfigPathKey is the named key for the config path string.
const ConfigPathKey = "config.path"

// Container wraps the do.Injector with curryhoward's services.
type Container struct {
	injector *do.RootScope
}

// NewContainer creates the DI container. configPath may name a file that does
// not exist; built-in defaults are used in that case. Services are created lazily.
func NewContainer(configPath string) (*Container, error) {
	injector := do.New()

	do.ProvideNamedValue(injector, ConfigPathKey, configPath)
	RegisterSingletons(injector)

	return &Container{
		injector: injector,
	}, nil
}

// Injector returns the underlying do.Injector for service resolution.
func (c *Container) Injector() *do.RootScope {
	return c.injector
}

// Invoke resolves a service from the container.
func Invoke[T any](c *Container) (T, error) {
	return do.Invoke[T](c.injector)
}

// MustInvoke resolves a service from the container or panics.
// Use this only during startup where errors are fatal.
func MustInvoke[T any](c *Container) T {
	return do.MustInvoke[T](c.injector)
}

// Shutdown shuts down all services in reverse order of initialization.
func (c *Container) Shutdown() error {
	report := c.injector.Shutdown()
	if report != nil && !report.Succeed {
		return fmt.Errorf("shutdown failed: %s", report.Error())
	}
	return nil
}

// HealthCheck resolves every service so configuration and cache errors surface
// before a run starts.
func (c *Container) HealthCheck() error {
	if _, err := do.Invoke[*ConfigService](c.injector); err != nil {
		return fmt.Errorf("config service unhealthy: %w", err)
	}
	if _, err := do.Invoke[*LoggerService](c.injector); err != nil {
		return fmt.Errorf("logger service unhealthy: %w", err)
	}
	if _, err := do.Invoke[*SuiteService](c.injector); err != nil {
		return fmt.Errorf("suite service unhealthy: %w", err)
	}
	if _, err := do.Invoke[*LibraryService](c.injector); err != nil {
		return fmt.Errorf("library service unhealthy: %w", err)
	}
	if _, err := do.Invoke[*RunnerService](c.injector); err != nil {
		return fmt.Errorf("runner service unhealthy: %w", err)
	}
	return nil
}
