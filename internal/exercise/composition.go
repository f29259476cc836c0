package exercise

import (
	"github.com/samber/lo"

	"github.com/omarluq/curryhoward/internal/check"
	"github.com/omarluq/curryhoward/internal/fixtures"
	"github.com/omarluq/curryhoward/internal/fp"
)

func compositionExercises(src SubjectSource) []Exercise {
	want := fixtures.Subjects()
	user := fixtures.SyncUser()

	compare := func(getSubjects func(fixtures.User) []fixtures.Subject) func() error {
		return func() error {
			return check.Equal(want, getSubjects(user))
		}
	}

	return []Exercise{
		{
			Name:    "vanilla-composition",
			Section: SectionComposition,
			Summary: "a user's subjects with an explicit loop",
			Run:     compare(subjectsLoop(src)),
		},
		{
			Name:    "lo-composition",
			Section: SectionComposition,
			Summary: "a user's subjects with lo.Map",
			Run:     compare(subjectsLo(src)),
		},
		{
			Name:    "point-free-composition",
			Section: SectionComposition,
			Summary: "a user's subjects as Map(SyncSubject) after Prop(KnownFor)",
			Run:     compare(subjectsComposed(src)),
		},
	}
}

func subjectsLoop(src SubjectSource) func(fixtures.User) []fixtures.Subject {
	return func(user fixtures.User) []fixtures.Subject {
		titles := user.KnownFor

		subjects := make([]fixtures.Subject, 0, len(titles))
		for _, title := range titles {
			subjects = append(subjects, src.SyncSubject(title))
		}
		return subjects
	}
}

func subjectsLo(src SubjectSource) func(fixtures.User) []fixtures.Subject {
	return func(user fixtures.User) []fixtures.Subject {
		return lo.Map(user.KnownFor, func(title string, _ int) fixtures.Subject {
			return src.SyncSubject(title)
		})
	}
}

func subjectsComposed(src SubjectSource) func(fixtures.User) []fixtures.Subject {
	return fp.Compose2(fp.Map(src.SyncSubject), fp.Prop(fixtures.UserKnownFor))
}
