package di

import (
	"github.com/samber/do/v2"
	"github.com/samber/lo"

	"github.com/omarluq/curryhoward/internal/config"
	"github.com/omarluq/curryhoward/internal/exercise"
)

// SuiteService holds the exercise catalogue.
type SuiteService struct {
	Exercises []exercise.Exercise
}

// NewSuite builds the catalogue over the library.
func NewSuite(i do.Injector) (*SuiteService, error) {
	libSvc := do.MustInvoke[*LibraryService](i)
	return &SuiteService{Exercises: exercise.Catalogue(libSvc.Library)}, nil
}

// Selected returns the exercises chosen by suite.only and suite.skip.
func (s *SuiteService) Selected(suite config.SuiteConfig) []exercise.Exercise {
	return exercise.Select(s.Exercises, suite.Only, suite.Skip)
}

// Unknown returns the names that match neither an exercise nor a section.
func (s *SuiteService) Unknown(names []string) []string {
	known := append(exercise.Names(s.Exercises),
		lo.Map(exercise.Sections(s.Exercises), func(sec exercise.Section, _ int) string {
			return string(sec)
		})...)
	return lo.Without(names, known...)
}
