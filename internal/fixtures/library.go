package fixtures

import (
	"github.com/rs/zerolog"

	"github.com/omarluq/curryhoward/internal/fp"
)

// Library answers subject lookups by title, standing in for a data-access layer.
// Lookups are memoized.
type Library struct {
	memo *fp.Memo[Subject]
	log  zerolog.Logger
}

// NewLibrary creates a Library over Subjects().
func NewLibrary(logger zerolog.Logger, cfg fp.MemoConfig) (*Library, error) {
	l := &Library{log: logger.With().Str("component", "library").Logger()}

	memo, err := fp.Memoize(l.findSubject, cfg)
	if err != nil {
		return nil, err
	}
	l.memo = memo

	return l, nil
}

// findSubject is the uncached lookup: the first subject whose title matches.
// An unknown title yields the zero Subject.
func (l *Library) findSubject(title string) Subject {
	l.log.Debug().Str("title", title).Msg("subject lookup")

	byTitle := fp.Compose2(fp.Equals(title), SubjectTitle)
	return fp.Compose2(fp.Head[Subject], fp.Filter(byTitle))(Subjects())
}

// SyncSubject returns the subject with the given title.
func (l *Library) SyncSubject(title string) Subject {
	return l.memo.Call(title)
}

// Hits reports how many lookups were answered from the cache.
func (l *Library) Hits() uint64 {
	return l.memo.Hits()
}

// Close releases the lookup cache.
func (l *Library) Close() {
	l.memo.Close()
}
