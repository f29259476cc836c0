package exercise

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/omarluq/curryhoward/internal/fixtures"
)

func TestScenarioCurriedMultiply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, multR(4)(3))
	assert.Equal(t, 12, multR.Call(4, 3))
	assert.Equal(t, 12, mult(4)(3))
}

func TestScenarioLatestGood(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Fight Club: 1999", latestGood(fixtures.Films()))
	assert.Equal(t, "Fight Club: 1999", latestAboveLoop(8.6)(fixtures.Films()))
}

func TestLatestGoodThresholds(t *testing.T) {
	t.Parallel()

	// The newest film sits exactly on the threshold.
	films := []film{
		{Title: "Older", Rating: 9.0, ReleaseYear: 1990},
		{Title: "Borderline", Rating: 8.6, ReleaseYear: 2010},
		{Title: "Weak", Rating: 7.0, ReleaseYear: 2020},
	}

	assert.Equal(t, "Borderline: 2010", latestGood(films), "composed pipeline is inclusive")
	assert.Equal(t, "Older: 1990", latestAboveLoop(8.6)(films), "loop is strict")
	assert.True(t, ratingAtLeast(8.6)(films[1]))
	assert.False(t, ratingAtLeast(8.6)(films[2]))
}

func TestScenarioTitlesByRating(t *testing.T) {
	t.Parallel()

	want := []string{"Beautiful Mind", "Citizen Kane", "Usual Suspects", "Fight Club"}
	assert.Equal(t, want, titlesByRating(fixtures.Films()))
	assert.Equal(t, want, titlesByRatingLoop(fixtures.Films()))
}

func TestScenarioSafeParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		assert.Equal(t, mo.None[[]string](), processResponse(fixtures.MalformedNames))
	})
}

func TestScenarioEarliest(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1941, earliest(fixtures.Films()))
	assert.Equal(t, 1941, earliestLoop(fixtures.Films()))
}

func TestDirectors5(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Orson", "David", "Bryan"}, directors5(fixtures.Films()))
	assert.Equal(t, directors5Loop(fixtures.Films()), directors5(fixtures.Films()))
}

func TestUpsurnameWithoutSurname(t *testing.T) {
	t.Parallel()

	user := fixtures.SyncUser()
	user.LastName = nil

	got := upsurname(user)
	assert.True(t, got.IsLeft())
	assert.Equal(t, "NotCurry", got.MustLeft())
}

func TestFirstLettersWithEveryNameMissing(t *testing.T) {
	t.Parallel()

	got := firstLetters([]*string{nil, nil})
	assert.Equal(t, mo.Some([]string{}), got)
}

func TestSeparateFilms(t *testing.T) {
	t.Parallel()

	got := separateFilms(fixtures.FilmShelf{AllFilms: fixtures.Films()})
	titles := make([]string, 0, len(got.NotGoodForMyGirlfriend))
	for _, f := range got.NotGoodForMyGirlfriend {
		titles = append(titles, f.Title)
	}

	assert.Equal(t, []string{"Citizen Kane", "Usual Suspects"}, titles)
	assert.Len(t, got.AllFilms, 4)
}
