package adt_test

import (
	"strings"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/omarluq/curryhoward/internal/adt"
	"github.com/omarluq/curryhoward/internal/fp"
)

func TestEitherOf(t *testing.T) {
	t.Parallel()

	surname := adt.EitherOf[string]("NotCurry")
	name := "Curry"

	assert.Equal(t, mo.Right[string]("Curry"), surname(&name))
	assert.Equal(t, mo.Left[string, string]("NotCurry"), surname(nil))
}

func TestEitherFromEmpty(t *testing.T) {
	t.Parallel()

	surname := adt.EitherFromEmpty[string]("NotCurry")

	assert.True(t, surname("Curry").IsRight())
	assert.Equal(t, mo.Left[string, string]("NotCurry"), surname(""))
}

func TestMapRight(t *testing.T) {
	t.Parallel()

	upsurname := fp.Compose2(adt.MapRight[string](strings.ToUpper), adt.EitherOf[string]("NotCurry"))
	name := "Curry"

	assert.Equal(t, mo.Right[string]("CURRY"), upsurname(&name))
	assert.Equal(t, mo.Left[string, string]("NotCurry"), upsurname(nil))
}

func TestMapRightLeavesLeftUntouched(t *testing.T) {
	t.Parallel()

	called := false
	length := adt.MapRight[string](func(s string) int { called = true; return len(s) })

	got := length(mo.Left[string, string]("missing"))

	assert.False(t, called)
	assert.Equal(t, mo.Left[string, int]("missing"), got)
}

func TestFold(t *testing.T) {
	t.Parallel()

	describe := adt.Fold(
		func(reason string) string { return "left: " + reason },
		func(v int) string { return "right" },
	)

	assert.Equal(t, "left: nope", describe(mo.Left[string, int]("nope")))
	assert.Equal(t, "right", describe(mo.Right[string](3)))
}

func TestRightOrElseAndToOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, adt.RightOrElse[string](0)(mo.Right[string](3)))
	assert.Equal(t, 0, adt.RightOrElse[string](0)(mo.Left[string, int]("x")))

	assert.Equal(t, mo.Some(3), adt.ToOption(mo.Right[string](3)))
	assert.True(t, adt.ToOption(mo.Left[string, int]("x")).IsAbsent())
}
