package route

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Register(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Register("Home", Schema{}))
	assert.ErrorIs(t, table.Register("Home", Schema{}), ErrDuplicateScreen)
	assert.Error(t, table.Register("", Schema{}))
	assert.Error(t, table.Register("Bad", Schema{Fields: []Field{{Name: "a"}, {Name: "a"}}}))
	assert.Error(t, table.Register("Unnamed", Schema{Fields: []Field{{Kind: KindInt}}}))

	assert.True(t, table.Has("Home"))
	assert.False(t, table.Has("Bad"))
	assert.Equal(t, []Name{"Home"}, table.Names())
}

func TestTable_MustRegisterPanics(t *testing.T) {
	table := NewTable().MustRegister("Home", Schema{})
	assert.Panics(t, func() { table.MustRegister("Home", Schema{}) })
}

func TestSchema_Required(t *testing.T) {
	s := Schema{Fields: []Field{
		{Name: "id", Kind: KindInt},
		{Name: "note", Kind: KindString, Optional: true},
		{Name: "ok", Kind: KindBool},
	}}
	assert.Equal(t, []string{"id", "ok"}, s.Required())
	assert.Empty(t, Schema{}.Required())
}

func TestTable_ResolveKinds(t *testing.T) {
	table := NewTable().MustRegister("All", Schema{Fields: []Field{
		{Name: "s", Kind: KindString},
		{Name: "i", Kind: KindInt},
		{Name: "f", Kind: KindFloat},
		{Name: "b", Kind: KindBool},
	}})

	got, err := table.Resolve("All", Params{"s": "x", "i": uint8(7), "f": 3, "b": true})
	require.NoError(t, err)
	assert.Equal(t, Params{"s": "x", "i": 7, "f": 3.0, "b": true}, got)

	_, err = table.Resolve("All", Params{"s": "x", "i": 1, "f": "1.5", "b": true})
	assert.True(t, IsParamShape(err))

	_, err = table.Resolve("All", Params{"s": "x", "i": 1, "f": 1.5, "b": "true"})
	assert.True(t, IsParamShape(err))

	_, err = table.Resolve("All", Params{"s": nil, "i": 1, "f": 1.5, "b": true})
	assert.True(t, IsParamShape(err), "nil counts as missing")
}

func TestTable_ResolveIntRange(t *testing.T) {
	table := NewTable().MustRegister("Details", Schema{Fields: []Field{
		{Name: "itemId", Kind: KindInt},
	}})

	for _, v := range []any{
		uint64(math.MaxUint64),
		uint64(math.MaxInt) + 1,
		uint(math.MaxUint),
		float64(math.MaxInt64),
		-math.Ldexp(1, 64),
		1e300,
	} {
		_, err := table.Resolve("Details", Params{"itemId": v})
		assert.True(t, IsParamShape(err), "%T %v should not fit an int", v, v)
	}

	got, err := table.Resolve("Details", Params{"itemId": uint64(42)})
	require.NoError(t, err)
	assert.Equal(t, 42, got.Int("itemId"))

	got, err = table.Resolve("Details", Params{"itemId": float64(-(1 << 53))})
	require.NoError(t, err)
	assert.Equal(t, -(1 << 53), got.Int("itemId"))
}

func TestParams_Accessors(t *testing.T) {
	p := Params{"title": "Second Item", "itemId": 2, "ratio": 0.5, "on": true}
	assert.Equal(t, "Second Item", p.String("title"))
	assert.Equal(t, 2, p.Int("itemId"))
	assert.Equal(t, 0.5, p.Float("ratio"))
	assert.Equal(t, 2.0, p.Float("itemId"))
	assert.True(t, p.Bool("on"))

	assert.Equal(t, "", p.String("itemId"))
	assert.Equal(t, 0, p.Int("title"))
	assert.False(t, p.Bool("missing"))
	assert.Equal(t, []string{"itemId", "on", "ratio", "title"}, p.Keys())

	var nilParams Params
	assert.NotNil(t, nilParams.Clone())
}
