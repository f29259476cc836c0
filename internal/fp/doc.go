/*
Package fp provides curried, side-effect free building blocks for point-free pipelines.

Every collection helper is returned in curried form so it can be handed to Compose
without naming intermediate values:

	titlesByRating := fp.Compose2(
		fp.Map(fp.Prop(func(f Film) string { return f.Title })),
		fp.SortBy(func(f Film) float64 { return f.Rating }),
	)

	titles := titlesByRating(films)

Collection helpers never mutate their input. Slices are backed by samber/lo where lo
has an equivalent; sorting copies before ordering.

Multi-argument functions are curried with Curry2 and Curry3. The curried value can be
applied one argument at a time or all at once:

	mult := fp.Curry2(func(x, y int) int { return x * y })
	mult(4)(3)      // 12
	mult.Call(4, 3) // 12
*/
package fp
