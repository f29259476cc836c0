// Package exercise holds the catalogue of functional-programming demonstrations.
//
// Each exercise computes its answer at least twice, once the plain Go way and once with
// the curried helpers of package fp, and checks every answer against the expected literal.
package exercise

import (
	"github.com/samber/lo"

	"github.com/omarluq/curryhoward/internal/fixtures"
)

// Section groups related exercises.
type Section string

// Sections in catalogue order.
const (
	SectionCurrying    Section = "currying"
	SectionComposition Section = "composition"
	SectionFilms       Section = "films"
	SectionFunctors    Section = "functors"
)

// Exercise is a single self-checking demonstration.
type Exercise struct {
	Run     func() error
	Name    string
	Section Section
	Summary string
}

// SubjectSource resolves a subject by its title.
type SubjectSource interface {
	SyncSubject(title string) fixtures.Subject
}

// Catalogue returns every exercise in presentation order.
func Catalogue(subjects SubjectSource) []Exercise {
	return lo.Flatten([][]Exercise{
		curryingExercises(),
		compositionExercises(subjects),
		filmExercises(),
		functorExercises(),
	})
}

// Select keeps the exercises named (by exercise name or section) in only, then drops the
// ones named in skip. An empty only keeps everything.
func Select(exercises []Exercise, only, skip []string) []Exercise {
	matches := func(names []string) func(Exercise, int) bool {
		return func(e Exercise, _ int) bool {
			return lo.Contains(names, e.Name) || lo.Contains(names, string(e.Section))
		}
	}

	selected := exercises
	if len(only) > 0 {
		selected = lo.Filter(selected, matches(only))
	}
	return lo.Reject(selected, matches(skip))
}

// Names lists the exercise names in order.
func Names(exercises []Exercise) []string {
	return lo.Map(exercises, func(e Exercise, _ int) string {
		return e.Name
	})
}

// Sections lists the distinct sections in order of first appearance.
func Sections(exercises []Exercise) []Section {
	return lo.Uniq(lo.Map(exercises, func(e Exercise, _ int) Section {
		return e.Section
	}))
}
