package exercise

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/omarluq/curryhoward/internal/check"
	"github.com/omarluq/curryhoward/internal/fixtures"
	"github.com/omarluq/curryhoward/internal/fp"
)

type film = fixtures.Film

func filmExercises() []Exercise {
	return []Exercise{
		{
			Name:    "directors-5",
			Section: SectionFilms,
			Summary: "directors' first names that are five letters long",
			Run:     runDirectors5,
		},
		{
			Name:    "titles-by-rating",
			Section: SectionFilms,
			Summary: "film titles sorted by rating",
			Run:     runTitlesByRating,
		},
		{
			Name:    "latest-good",
			Section: SectionFilms,
			Summary: "title and year of the latest film rated 8.6 or higher",
			Run:     runLatestGood,
		},
		{
			Name:    "earliest",
			Section: SectionFilms,
			Summary: "earliest release year, folded with min from 2015",
			Run:     runEarliest,
		},
		{
			Name:    "converge",
			Section: SectionFilms,
			Summary: "films released before 1999 stored under notGoodForMyGirlfriend",
			Run:     runConverge,
		},
	}
}

func directors5Loop(films []film) []string {
	var out []string
	for _, f := range films {
		first := strings.Split(f.Director, " ")[0]
		if len(first) == 5 {
			out = append(out, first)
		}
	}
	return out
}

var (
	directors  = fp.Map(fp.Compose3(fp.Head[string], fp.Split(" "), fp.Prop(fixtures.FilmDirector)))
	length5    = fp.Compose2(fp.Equals(5), fp.Length)
	directors5 = fp.Compose2(fp.Filter(length5), directors)
)

func runDirectors5() error {
	want := []string{"Orson", "David", "Bryan"}

	return check.All(
		check.Equal(want, directors5Loop(fixtures.Films())),
		check.Equal(want, directors5(fixtures.Films())),
	)
}

func titlesByRatingLoop(films []film) []string {
	sorted := slices.Clone(films)
	slices.SortStableFunc(sorted, func(a, b film) int {
		switch {
		case a.Rating < b.Rating:
			return -1
		case a.Rating > b.Rating:
			return 1
		default:
			return 0
		}
	})

	titles := make([]string, 0, len(sorted))
	for _, f := range sorted {
		titles = append(titles, f.Title)
	}
	return titles
}

var titlesByRating = fp.Compose2(fp.Map(fp.Prop(fixtures.FilmTitle)), fp.SortBy(fixtures.FilmRating))

func runTitlesByRating() error {
	want := []string{"Beautiful Mind", "Citizen Kane", "Usual Suspects", "Fight Club"}

	return check.All(
		check.Equal(want, titlesByRatingLoop(fixtures.Films())),
		check.Equal(want, titlesByRating(fixtures.Films())),
		check.Equal(titlesByRatingLoop(fixtures.Films()), titlesByRating(fixtures.Films())),
	)
}

func describeFilm(f film) string {
	return fmt.Sprintf("%s: %d", f.Title, f.ReleaseYear)
}

// latestAboveLoop picks the latest film rated strictly above rating.
func latestAboveLoop(rating float64) func([]film) string {
	return func(films []film) string {
		var latest film
		for _, f := range films {
			if f.Rating > rating && f.ReleaseYear > latest.ReleaseYear {
				latest = f
			}
		}
		return describeFilm(latest)
	}
}

func ratingAtLeast(rating float64) func(film) bool {
	return fp.Compose2(fp.Lte(rating), fp.Prop(fixtures.FilmRating))
}

var latestGood = fp.Compose4(
	describeFilm,
	fp.Last[film],
	fp.SortBy(fixtures.FilmReleaseYear),
	fp.Filter(ratingAtLeast(8.6)),
)

func runLatestGood() error {
	want := "Fight Club: 1999"

	return check.All(
		check.Equal(want, latestAboveLoop(8.6)(fixtures.Films())),
		check.Equal(want, latestGood(fixtures.Films())),
	)
}

func earliestLoop(films []film) int {
	earliest := 2015
	for _, f := range films {
		earliest = min(earliest, f.ReleaseYear)
	}
	return earliest
}

var earliest = fp.Compose2(fp.Reduce(fp.Min[int], 2015), fp.Map(fp.Prop(fixtures.FilmReleaseYear)))

func runEarliest() error {
	years := lo.Map(fixtures.Films(), func(f film, _ int) int { return f.ReleaseYear })

	return check.All(
		check.Equal(1941, earliestLoop(fixtures.Films())),
		check.Equal(1941, earliest(fixtures.Films())),
		check.Equal(1941, fp.Reduce(fp.Min[int], 2015)(years)),
	)
}

var (
	releasedSince1999 = fp.Compose2(fp.Lte(1999), fp.Prop(fixtures.FilmReleaseYear))

	separateFilms = fp.Converge[fixtures.FilmShelf, []film, fixtures.FilmShelf, fixtures.FilmShelf](
		fp.Assoc(fixtures.SetNotGoodForMyGirlfriend),
		fp.Compose2(fp.Reject(releasedSince1999), fp.Prop(fixtures.ShelfAllFilms)),
		fp.Identity[fixtures.FilmShelf],
	)
)

func separateFilmsLoop(shelf fixtures.FilmShelf) fixtures.FilmShelf {
	var older []film
	for _, f := range shelf.AllFilms {
		if f.ReleaseYear < 1999 {
			older = append(older, f)
		}
	}
	shelf.NotGoodForMyGirlfriend = older
	return shelf
}

func runConverge() error {
	films := fixtures.Films()
	shelf := fixtures.FilmShelf{AllFilms: films}
	want := fixtures.FilmShelf{
		AllFilms:               fixtures.Films(),
		NotGoodForMyGirlfriend: []film{films[0], films[3]},
	}

	return check.All(
		check.Equal(want, separateFilms(shelf)),
		check.Equal(want, separateFilmsLoop(shelf)),
		check.Equal(fixtures.FilmShelf{AllFilms: fixtures.Films()}, shelf),
	)
}
