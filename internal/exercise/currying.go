package exercise

import (
	"github.com/samber/lo"

	"github.com/omarluq/curryhoward/internal/check"
	"github.com/omarluq/curryhoward/internal/fp"
)

// mult is curried by hand.
func mult(x int) func(int) int {
	return func(y int) int {
		return x * y
	}
}

var (
	multR  = fp.Curry2(func(x, y int) int { return x * y })
	modulo = fp.Curry2(func(divisor, dividend int) int { return dividend % divisor })
)

func curryingExercises() []Exercise {
	return []Exercise{
		{
			Name:    "currying",
			Section: SectionCurrying,
			Summary: "multiply and modulo, curried by hand and with fp.Curry2",
			Run:     runCurrying,
		},
		{
			Name:    "index",
			Section: SectionCurrying,
			Summary: "distinct initials of a list of names",
			Run:     runIndex,
		},
	}
}

func runCurrying() error {
	multBy4 := mult(4)
	multRBy4 := multR(4)
	isOdd := modulo(2)

	return check.All(
		check.Equal(12, multBy4(3)),
		check.Equal(12, mult(4)(3)),
		check.Equal(12, multRBy4(3)),
		check.Equal(12, multR.Call(4, 3)),
		check.Equal(0, isOdd(8)),
	)
}

// indexLoop is the plain loop version.
func indexLoop(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		initial := fp.FirstRune(name)
		if seen[initial] {
			continue
		}
		seen[initial] = true
		out = append(out, initial)
	}
	return out
}

// indexLo calls lo directly, collection first.
func indexLo(names []string) []string {
	return lo.Uniq(lo.Map(names, func(name string, _ int) string {
		return fp.FirstRune(name)
	}))
}

// indexComposed is point-free.
var indexComposed = fp.Compose2(fp.Uniq[string], fp.Map(fp.FirstRune))

func runIndex() error {
	names := []string{"Ann", "Jim", "Jennifer"}
	want := []string{"A", "J"}

	return check.All(
		check.Equal(want, indexLoop(names)),
		check.Equal(want, indexLo(names)),
		check.Equal(want, indexComposed(names)),
		check.Equal([]string{"T", "M"}, fp.Map(fp.FirstRune)([]string{"Tab", "Mark"})),
		check.Equal([]string{"T", "M"}, indexComposed([]string{"Tab", "Mark", "Mike"})),
	)
}
