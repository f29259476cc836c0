package exercise

import (
	"strings"

	"github.com/samber/mo"

	"github.com/omarluq/curryhoward/internal/adt"
	"github.com/omarluq/curryhoward/internal/check"
	"github.com/omarluq/curryhoward/internal/fixtures"
	"github.com/omarluq/curryhoward/internal/fp"
)

func functorExercises() []Exercise {
	return []Exercise{
		{
			Name:    "box",
			Section: SectionFunctors,
			Summary: "map over a slice and over a Box",
			Run:     runBox,
		},
		{
			Name:    "upname",
			Section: SectionFunctors,
			Summary: "uppercase an optional first name; a missing town stays None",
			Run:     runUpname,
		},
		{
			Name:    "upsurname",
			Section: SectionFunctors,
			Summary: "uppercase a surname through Either, defaulting to Left(NotCurry)",
			Run:     runUpsurname,
		},
		{
			Name:    "letters-m",
			Section: SectionFunctors,
			Summary: "first initial equal to M, lowercased inside an Option",
			Run:     runLettersM,
		},
		{
			Name:    "first-letters",
			Section: SectionFunctors,
			Summary: "initials of names with a missing entry, sequenced into one Option",
			Run:     runFirstLetters,
		},
		{
			Name:    "safe-parse",
			Section: SectionFunctors,
			Summary: "parse, sort and lowercase names without blowing up on bad JSON",
			Run:     runSafeParse,
		},
	}
}

func runBox() error {
	add1 := fp.Add(1)
	boxed := fp.Compose2(adt.Box[int].Value, adt.MapBox(add1))

	return check.All(
		check.Equal([]int{3}, fp.Map(add1)([]int{2})),
		check.Equal(3, boxed(adt.NewBox(2))),
		check.Equal(3, adt.NewBox(2).Map(add1).Value()),
	)
}

var (
	upname = fp.Compose3(adt.MapOption(fp.ToUpper), adt.FromEmpty[string], fp.Prop(fixtures.UserFirstName))
	uptown = fp.Compose3(adt.MapOption(fp.ToUpper), adt.FromNullable[string], fp.Prop(fixtures.UserTown))
)

func runUpname() error {
	user := fixtures.SyncUser()

	// Without an Option, a missing town has to be checked at the call site.
	plainTown := mo.None[string]()
	if user.Town != nil {
		plainTown = mo.Some(strings.ToUpper(*user.Town))
	}

	return check.All(
		check.EqualOption(mo.Some("HASKELL"), upname(user)),
		check.EqualOption(mo.None[string](), uptown(user)),
		check.EqualOption(plainTown, uptown(user)),
	)
}

var upsurname = fp.Compose3(
	adt.MapRight[string](fp.ToUpper),
	adt.EitherOf[string]("NotCurry"),
	fp.Prop(fixtures.UserLastName),
)

func runUpsurname() error {
	user := fixtures.SyncUser()
	anonymous := fixtures.SyncUser()
	anonymous.LastName = nil

	return check.All(
		check.EqualEither(mo.Right[string]("CURRY"), upsurname(user)),
		check.EqualEither(mo.Left[string, string]("NotCurry"), upsurname(anonymous)),
	)
}

var lettersM = fp.Compose4(
	adt.MapOption(fp.ToLower),
	fp.HeadOption[string],
	fp.Filter(fp.Equals("M")),
	fp.Map(fp.FirstRune),
)

func runLettersM() error {
	return check.All(
		check.EqualOption(mo.Some("m"), lettersM(fixtures.Names())),
		check.EqualOption(mo.None[string](), lettersM([]string{"John", "Ann"})),
	)
}

var firstLetters = fp.Compose4(
	adt.Sequence[string],
	fp.Filter(adt.IsPresent[string]),
	fp.Map(adt.MapOption(fp.FirstRune)),
	fp.Map(adt.FromNullable[string]),
)

func runFirstLetters() error {
	got := firstLetters(fixtures.MaybeNames())

	return check.All(
		check.Equal([]string{"J", "M", "A"}, adt.GetOrElse[[]string](nil)(got)),
		check.Equal([]string{"J", "M", "A"}, adt.Compact(fp.Map(adt.MapOption(fp.FirstRune))(
			fp.Map(adt.FromNullable[string])(fixtures.MaybeNames()),
		))),
	)
}

var (
	sortNamesLowercase = fp.Compose2(fp.Map(fp.ToLower), fp.SortBy(fp.Identity[string]))
	processResponse    = fp.Compose2(adt.MapOption(sortNamesLowercase), adt.ParseJSON[[]string])
)

func runSafeParse() error {
	return check.All(
		check.EqualOption(mo.None[[]string](), processResponse(fixtures.MalformedNames)),
		check.EqualOption(
			mo.Some([]string{"ann", "harry", "john", "marry"}),
			processResponse(fixtures.WellFormedNames),
		),
	)
}
