package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_ReturnsPoolMember(t *testing.T) {
	members := make(map[string]bool, len(pool))
	for _, ua := range pool {
		members[ua] = true
	}

	for i := 0; i < 1000; i++ {
		ua := Random()
		require.True(t, members[ua], "unexpected identity %q", ua)
	}
}

func TestRandom_ReachesEveryMember(t *testing.T) {
	seen := make(map[string]int, len(pool))
	for i := 0; i < 50_000; i++ {
		seen[Random()]++
	}

	for _, ua := range pool {
		assert.NotZero(t, seen[ua], "identity never selected: %q", ua)
	}
}

func TestPool(t *testing.T) {
	t.Run("is non-empty", func(t *testing.T) {
		assert.NotEmpty(t, Pool())
	})

	t.Run("returns a copy", func(t *testing.T) {
		p := Pool()
		original := pool[0]
		p[0] = "mutated"
		assert.Equal(t, original, pool[0])
	})

	t.Run("has no blank entries", func(t *testing.T) {
		for i, ua := range Pool() {
			assert.NotEmpty(t, ua, "entry %d is blank", i)
		}
	})
}
