package di

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/omarluq/curryhoward/internal/fixtures"
)

// LibraryService owns the memoized fixture library.
type LibraryService struct {
	Library *fixtures.Library
}

// NewLibrary creates the library with the configured cache sizing.
func NewLibrary(i do.Injector) (*LibraryService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)
	logSvc := do.MustInvoke[*LoggerService](i)

	lib, err := fixtures.NewLibrary(*logSvc.Logger, cfgSvc.Get().Cache.MemoConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create library: %w", err)
	}

	return &LibraryService{Library: lib}, nil
}

// Shutdown implements do.Shutdowner and releases the cache.
func (l *LibraryService) Shutdown() error {
	if l.Library != nil {
		l.Library.Close()
	}
	return nil
}
