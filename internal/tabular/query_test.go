package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{"id": String("sword"), "type": String("weapon"), "value": Int(80)},
		{"id": String("shield"), "type": String("armor"), "value": Int(60)},
		{"id": String("longsword"), "type": String("weapon"), "value": Int(120)},
		{"id": String("herb"), "type": String("consumable"), "value": Null()},
	}
}

func TestFilterEq(t *testing.T) {
	out := FilterEq(testRecords(), "type", "weapon")
	require.Len(t, out, 2)
	assert.Equal(t, "sword", out[0].Str("id", ""))
	assert.Equal(t, "longsword", out[1].Str("id", ""))
}

func TestFilterRange(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		out := FilterRange(testRecords(), "value", 60, 80)
		assert.Len(t, out, 2)
	})

	t.Run("null columns never match", func(t *testing.T) {
		out := FilterRange(testRecords(), "value", 0, 1000)
		assert.Len(t, out, 3)
	})
}

func TestFilterContains(t *testing.T) {
	out := FilterContains(testRecords(), "id", "SWORD")
	assert.Len(t, out, 2)
}

func TestFilterIn(t *testing.T) {
	out := FilterIn(testRecords(), "id", []string{"shield", "herb", "absent"})
	assert.Len(t, out, 2)
}

func TestFindFirst(t *testing.T) {
	rec, ok := FindFirst(testRecords(), "id", "shield")
	require.True(t, ok)
	assert.Equal(t, "armor", rec.Str("type", ""))

	_, ok = FindFirst(testRecords(), "id", "absent")
	assert.False(t, ok)
}

func TestDistinctValues(t *testing.T) {
	types := DistinctValues(testRecords(), "type")
	assert.Equal(t, []string{"weapon", "armor", "consumable"}, types)

	values := DistinctValues(testRecords(), "value")
	assert.Len(t, values, 3) // null row skipped
}
