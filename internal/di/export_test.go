package di

import "github.com/omarluq/curryhoward/internal/config"

// NewConfigServiceForTest builds a ConfigService without a container.
func NewConfigServiceForTest(path string, cfg *config.Config) *ConfigService {
	return newConfigService(path, cfg)
}
