package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("headers are lower-cased and trimmed", func(t *testing.T) {
		records, err := Parse(strings.NewReader(" ID , Name \nsword,Iron Sword\n"))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "sword", records[0].Str("id", ""))
		assert.Equal(t, "Iron Sword", records[0].Str("name", ""))
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		records, err := Parse(strings.NewReader("id,qty\n\nsword,3\n\n\nshield,1\n"))
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("long rows truncate to the header", func(t *testing.T) {
		records, err := Parse(strings.NewReader("id,qty\nsword,3,extra,columns\n"))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Len(t, records[0], 2)
		assert.Equal(t, 3, records[0].Int("qty", 0))
	})

	t.Run("short rows leave trailing columns null", func(t *testing.T) {
		records, err := Parse(strings.NewReader("id,qty,rarity\nsword\n"))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.False(t, records[0].Has("qty"))
		assert.Equal(t, 7, records[0].Int("qty", 7))
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		records, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestInferValue(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want Value
	}{
		{"empty is null", "", Null()},
		{"whitespace is null", "   ", Null()},
		{"true token", "true", Bool(true)},
		{"yes token", "YES", Bool(true)},
		{"one is boolean", "1", Bool(true)},
		{"false token", "False", Bool(false)},
		{"no token", "no", Bool(false)},
		{"zero is boolean", "0", Bool(false)},
		{"integer", "42", Int(42)},
		{"negative integer", "-7", Int(-7)},
		{"float", "2.5", Float(2.5)},
		{"list", "[wood,stone]", List([]string{"wood", "stone"})},
		{"list with spaces", "[ wood , stone ]", List([]string{"wood", "stone"})},
		{"empty list", "[]", List(nil)},
		{"string", "Iron Sword", String("Iron Sword")},
		{"padded string trims", "  sword  ", String("sword")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferValue(tt.cell))
		})
	}
}

func TestValueCoercion(t *testing.T) {
	t.Run("bool from int", func(t *testing.T) {
		assert.True(t, Int(5).Bool())
		assert.False(t, Int(0).Bool())
	})

	t.Run("int from float truncates", func(t *testing.T) {
		assert.Equal(t, int64(2), Float(2.9).Int())
	})

	t.Run("float from int", func(t *testing.T) {
		assert.Equal(t, 3.0, Int(3).Float())
	})

	t.Run("int from numeric string", func(t *testing.T) {
		assert.Equal(t, int64(12), String("12").Int())
	})

	t.Run("list from comma string", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, String("a, b").List())
	})

	t.Run("list from scalar wraps", func(t *testing.T) {
		assert.Equal(t, []string{"42"}, Int(42).List())
	})

	t.Run("null coerces to zero values", func(t *testing.T) {
		v := Null()
		assert.Equal(t, "", v.String())
		assert.Equal(t, int64(0), v.Int())
		assert.False(t, v.Bool())
		assert.Nil(t, v.List())
	})
}

func TestRecordDefaults(t *testing.T) {
	rec := Record{"qty": Null(), "name": String("sword")}

	assert.Equal(t, 7, rec.Int("qty", 7))
	assert.Equal(t, 7, rec.Int("missing", 7))
	assert.Equal(t, "sword", rec.Str("name", "x"))
	assert.False(t, rec.Has("qty"))
	assert.True(t, rec.Has("name"))
}
