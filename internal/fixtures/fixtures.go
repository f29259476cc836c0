// Package fixtures holds the canned records the exercises run against.
//
// Every constructor returns a fresh value, so nothing a caller does can leak into
// another exercise.
package fixtures

// Parent is a person referenced by a User.
type Parent struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
}

// User is the record the currying and functor exercises work on.
// Town is deliberately never set.
type User struct {
	FirstName   string   `json:"firstName"`
	MiddleName  string   `json:"middleName"`
	LastName    *string  `json:"lastName,omitempty"`
	Town        *string  `json:"town,omitempty"`
	DateOfBirth string   `json:"dateOfBirth"`
	DateOfDeath string   `json:"dateOfDeath"`
	KnownFor    []string `json:"knownFor"`
	Parents     []Parent `json:"parents"`
}

// Subject is something a User is known for.
type Subject struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// Film is an entry of the film list.
type Film struct {
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
	Director    string  `json:"director"`
}

// FilmShelf groups every film with the ones picked out as unsuitable.
type FilmShelf struct {
	AllFilms               []Film `json:"allFilms"`
	NotGoodForMyGirlfriend []Film `json:"notGoodForMyGirlfriend"`
}

// Field selectors for use with fp.Prop.

// FilmTitle selects Film.Title.
func FilmTitle(f Film) string { return f.Title }

// FilmRating selects Film.Rating.
func FilmRating(f Film) float64 { return f.Rating }

// FilmReleaseYear selects Film.ReleaseYear.
func FilmReleaseYear(f Film) int { return f.ReleaseYear }

// FilmDirector selects Film.Director.
func FilmDirector(f Film) string { return f.Director }

// SubjectTitle selects Subject.Title.
func SubjectTitle(s Subject) string { return s.Title }

// UserKnownFor selects User.KnownFor.
func UserKnownFor(u User) []string { return u.KnownFor }

// UserFirstName selects User.FirstName.
func UserFirstName(u User) string { return u.FirstName }

// UserLastName selects User.LastName, which may be nil.
func UserLastName(u User) *string { return u.LastName }

// UserTown selects User.Town, which may be nil.
func UserTown(u User) *string { return u.Town }

// ShelfAllFilms selects FilmShelf.AllFilms.
func ShelfAllFilms(s FilmShelf) []Film { return s.AllFilms }

// SetNotGoodForMyGirlfriend stores films on a copy of s.
func SetNotGoodForMyGirlfriend(s FilmShelf, films []Film) FilmShelf {
	s.NotGoodForMyGirlfriend = films
	return s
}

func ptr[T any](v T) *T {
	return &v
}

// SyncUser returns Haskell Curry.
func SyncUser() User {
	return User{
		FirstName:   "Haskell",
		MiddleName:  "Brooks",
		LastName:    ptr("Curry"),
		DateOfBirth: "Wed Sep 12 1900 00:00:00 GMT+0100 (BST)",
		DateOfDeath: "Wed Sep 01 1982 00:00:00 GMT+0100 (BST)",
		KnownFor:    []string{"Combinatory logic", "Curry–Howard correspondence", "Curry's paradox"},
		Parents: []Parent{
			{FirstName: "Samuel", MiddleName: "Silas", LastName: "Curry"},
			{FirstName: "Anna", MiddleName: "Baright", LastName: "Curry"},
		},
	}
}

// Subjects returns the subjects Haskell Curry is known for.
// The last one has no description.
func Subjects() []Subject {
	return []Subject{
		{
			Title: "Combinatory logic",
			Description: ptr("Combinatory logic is a notation to eliminate the need for quantified " +
				"variables in mathematical logic. It was introduced by Moses Schönfinkel[1] and " +
				"Haskell Curry,[2] and has more recently been used in computer science as a " +
				"theoretical model of computation and also as a basis for the design of functional " +
				"programming languages. It is based on combinators. A combinator is a higher-order " +
				"function that uses only function application and earlier defined combinators to " +
				"define a result from its arguments."),
		},
		{
			Title: "Curry–Howard correspondence",
			Description: ptr("In programming language theory and proof theory, the Curry–Howard " +
				"correspondence (also known as the Curry–Howard isomorphism or equivalence, or the " +
				"proofs-as-programs and propositions- or formulae-as-types interpretation) is the " +
				"direct relationship between computer programs and mathematical proofs. It is a " +
				"generalization of a syntactic analogy between systems of formal logic and " +
				"computational calculi that was first discovered by the American mathematician " +
				"Haskell Curry and logician William Alvin Howard.[1] It is the link between logic " +
				"and computation that is usually attributed to Curry and Howard, although the idea " +
				"is related to the operational interpretation of intuitionistic logic given in " +
				"various formulations by L. E. J. Brouwer, Arend Heyting and Andrey Kolmogorov " +
				"(see Brouwer–Heyting–Kolmogorov interpretation)[2] and Stephen Kleene (see " +
				"Realizability). The relationship has been extended to include category theory as " +
				"the three-way Curry–Howard–Lambek correspondence."),
		},
		{
			Title: "Curry's paradox",
		},
	}
}

// Films returns the film list in its canonical order.
func Films() []Film {
	return []Film{
		{Title: "Citizen Kane", Rating: 8.4, ReleaseYear: 1941, Director: "Orson Welles"},
		{Title: "Fight Club", Rating: 8.9, ReleaseYear: 1999, Director: "David Fincher"},
		{Title: "Beautiful Mind", Rating: 8.2, ReleaseYear: 2001, Director: "Ron Howard"},
		{Title: "Usual Suspects", Rating: 8.6, ReleaseYear: 1995, Director: "Bryan Singer"},
	}
}

// Names returns plain first names.
func Names() []string {
	return []string{"John", "Marry", "Ann"}
}

// MaybeNames returns first names with a missing entry.
func MaybeNames() []*string {
	return []*string{ptr("John"), ptr("Marry"), ptr("Ann"), nil}
}

// MalformedNames is a JSON array with an unquoted element.
const MalformedNames = "[\"John\", \"Marry\", \"Ann\", Harry\"]"

// WellFormedNames is the corrected form of MalformedNames.
const WellFormedNames = `["John", "Marry", "Ann", "Harry"]`
