package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOPM(t *testing.T) {
	assert.Equal(t, 500.0, OPM(500, 1_000_000))
	assert.Equal(t, 100.0, OPM(100, 1_000_000))
	assert.Equal(t, 0.0, OPM(10, 0), "zero tokens")
	assert.Equal(t, 0.0, OPM(0, 1000))
	assert.InDelta(t, 25000.0, OPM(1, 40), 1e-9)
}

func TestWindowLikelihood(t *testing.T) {
	t.Run("matches closed form", func(t *testing.T) {
		got := WindowLikelihood(500, 1_000_000, 1000)
		want := 1 - math.Pow(1-0.0005, 1000)
		assert.InDelta(t, want, got, 1e-12)
	})

	t.Run("short text is one window", func(t *testing.T) {
		assert.Equal(t, 1.0, WindowLikelihood(1, 500, 1000))
		assert.Equal(t, 0.0, WindowLikelihood(0, 500, 1000))
	})

	t.Run("text exactly k long uses the formula", func(t *testing.T) {
		got := WindowLikelihood(1, 1000, 1000)
		assert.InDelta(t, 1-math.Pow(1-0.001, 1000), got, 1e-12)
	})

	t.Run("count above tokens saturates", func(t *testing.T) {
		assert.Equal(t, 1.0, WindowLikelihood(2000, 1000, 10))
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Equal(t, 0.0, WindowLikelihood(5, 0, 10))
		assert.Equal(t, 0.0, WindowLikelihood(5, 100, 0))
	})

	t.Run("monotone in count", func(t *testing.T) {
		prev := 0.0
		for c := 1.0; c <= 1000; c *= 2 {
			l := WindowLikelihood(c, 100_000, 40)
			assert.Greater(t, l, prev)
			assert.LessOrEqual(t, l, 1.0)
			prev = l
		}
	})
}

func TestLAS(t *testing.T) {
	las := LAS(500, 1_000_000, 100, 1_000_000, 1000)
	assert.Greater(t, las, 0.0)
	assert.InDelta(t, 0.2984, las, 0.0001)

	assert.Greater(t, LAS(3, 1_000_000, 0, 1_000_000, 1000), 0.0, "word absent from human text")
	assert.Less(t, LAS(0, 1_000_000, 3, 1_000_000, 1000), 0.0)
	assert.Equal(t, 0.0, LAS(7, 1000, 7, 1000, 40))
}

func TestRatio(t *testing.T) {
	r, ok := Ratio(500, 100)
	assert.True(t, ok)
	assert.Equal(t, 5.0, r)

	_, ok = Ratio(500, 0)
	assert.False(t, ok)

	r, ok = Ratio(0, 100)
	assert.True(t, ok)
	assert.Equal(t, 0.0, r)
}

func TestSmoothedRatioAndLPR(t *testing.T) {
	a := &Analytics{RatioSmooth: 0.5, MinAICount: 20}

	assert.Equal(t, 41.0, a.SmoothedRatio(20, 0))
	assert.Equal(t, 1.0, a.SmoothedRatio(0, 0))

	assert.Equal(t, 0.0, a.LPR(19, 0), "below the gate")
	assert.InDelta(t, math.Log2(21.0/1.0), a.LPR(20, 0), 1e-12)
	assert.InDelta(t, -1.0, a.LPR(31, 63), 1e-12)
}
