package di

import "github.com/samber/do/v2"

// RegisterSingletons registers all service providers as singletons.
// Services are registered in dependency order:
// 1. Config (no dependencies)
// 2. Logger (depends on Config)
// 3. Library (depends on Config, Logger)
// 4. Suite (depends on Library)
// 5. Runner (depends on Config, Logger, Suite).
func RegisterSingletons(i do.Injector) {
	do.Provide(i, NewConfig)
	do.Provide(i, NewLogger)
	do.Provide(i, NewLibrary)
	do.Provide(i, NewSuite)
	do.Provide(i, NewRunner)
}
