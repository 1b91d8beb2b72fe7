package compare

import (
	"testing"

	"github.com/npillmayer/immutable/maybe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsCachedPerType(t *testing.T) {
	a, b := Default[int](), Default[int]()
	require.Same(t, a, b, "expected one default comparer per type")
	require.NotEqual(t, any(Default[string]()), any(Default[int]()))
	assert.Equal(t, -1, a.Compare(1, 2))
	assert.Equal(t, 0, a.Compare(2, 2))
	assert.Equal(t, 1, a.Compare(3, 2))
	t.Logf("default comparer for int = %s", a)
}

func TestNewCreatesDistinctComparers(t *testing.T) {
	c1 := New("a", func(a, b int) int { return a - b })
	c2 := New("a", func(a, b int) int { return a - b })
	assert.NotSame(t, c1, c2)
	assert.Panics(t, func() {
		New[int]("nil", nil)
	})
}

func TestOrdinal(t *testing.T) {
	assert.Less(t, Ordinal.Compare("APPLE", "apple"), 0)
	assert.False(t, Ordinal.Equal("apple", "APPLE"))
	assert.True(t, Ordinal.Equal("apple", "apple"))
}

func TestOrdinalIgnoreCase(t *testing.T) {
	cases := []struct {
		a, b string
		sign int
	}{
		{"apple", "APPLE", 0},
		{"aPpLe", "Apple", 0},
		{"apple", "applf", -1},
		{"Banana", "apple", 1},
		{"app", "APPLE", -1},
		{"", "", 0},
		{"ä", "Ä", 0},
	}
	for i, c := range cases {
		got := sign(OrdinalIgnoreCase.Compare(c.a, c.b))
		if got != c.sign {
			t.Errorf("%d: expected compare(%q, %q) to be %d, is %d", i, c.a, c.b, c.sign, got)
		}
	}
}

func TestReverse(t *testing.T) {
	r := Reverse(Default[int]())
	assert.Greater(t, r.Compare(1, 2), 0)
	assert.Equal(t, "reverse(default(int))", r.String())
}

func TestMaybeOrdersNothingFirst(t *testing.T) {
	c := Maybe(Ordinal)
	null := maybe.Nothing[string]()
	assert.Equal(t, 0, c.Compare(null, maybe.Nothing[string]()))
	assert.Less(t, c.Compare(null, maybe.Just("")), 0)
	assert.Greater(t, c.Compare(maybe.Just("a"), null), 0)
	assert.Less(t, c.Compare(maybe.Just("a"), maybe.Just("b")), 0)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestByComposesKeyAndOrder(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	byAge := By("age", func(p person) int { return p.age }, Default[int]())
	assert.Equal(t, "age", byAge.String())
	assert.Less(t, byAge.Compare(person{"b", 20}, person{"a", 30}), 0)
	assert.True(t, byAge.Equal(person{"a", 20}, person{"b", 20}))
	byName := By("name", func(p person) string { return p.name }, Reverse(Ordinal))
	assert.Greater(t, byName.Compare(person{"a", 1}, person{"b", 1}), 0)
}
