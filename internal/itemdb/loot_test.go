package itemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed rolls so loot outcomes are deterministic.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSource) IntBetween(min, max int) int {
	if len(s.ints) == 0 {
		return min
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func TestGenerateLoot(t *testing.T) {
	db, _ := newTestDB(t)
	require.NoError(t, db.Load(context.Background()))

	t.Run("roll at the chance boundary drops", func(t *testing.T) {
		// forest: wood 0.9, healing_herb 0.5, ghost_item 1 (unknown item).
		src := &scriptedSource{floats: []float64{0.9, 0.5, 1.0}, ints: []int{2}}
		drops := db.GenerateLoot(context.Background(), "forest", src)

		counts := map[string]int{}
		for _, item := range drops {
			counts[item.ID]++
		}
		assert.Equal(t, 2, counts["wood"])
		assert.Equal(t, 1, counts["healing_herb"])
	})

	t.Run("roll above the chance misses", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{0.91, 0.51, 1.0}}
		drops := db.GenerateLoot(context.Background(), "forest", src)
		// wood and herb miss; the remaining entry references an unknown item.
		assert.Empty(t, drops)
	})

	t.Run("quantity draws only when max exceeds min", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{0.0}, ints: []int{99}}
		drops := db.GenerateLoot(context.Background(), "forest", src)
		// wood max 4 clamps the scripted 99.
		woodCount := 0
		for _, item := range drops {
			if item.ID == "wood" {
				woodCount++
			}
		}
		assert.Equal(t, 4, woodCount)
	})

	t.Run("unknown entries degrade to nothing", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{1.0}}
		drops := db.GenerateLoot(context.Background(), "forest", src)
		for _, item := range drops {
			assert.NotEqual(t, "ghost_item", item.ID)
		}
	})

	t.Run("unknown table yields nil", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{0.0}}
		assert.Nil(t, db.GenerateLoot(context.Background(), "absent_table", src))
	})

	t.Run("duplicate references share the catalog item", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{0.0, 1.0, 1.0}, ints: []int{3}}
		drops := db.GenerateLoot(context.Background(), "forest", src)
		require.Len(t, drops, 3)
		assert.Same(t, drops[0], drops[1])
	})
}
