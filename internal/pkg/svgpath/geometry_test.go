//go:build unit

package svgpath_test

import (
	"math"
	"testing"

	"charmforge/internal/pkg/svgpath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPxPerMm(t *testing.T) {
	t.Run("ratio", func(t *testing.T) {
		ratio, err := svgpath.PxPerMm(360, 180)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, ratio, 1e-9)
	})

	t.Run("zero physical length", func(t *testing.T) {
		_, err := svgpath.PxPerMm(360, 0)
		assert.ErrorIs(t, err, svgpath.ErrInvalidGeometry)
	})

	t.Run("negative physical length", func(t *testing.T) {
		_, err := svgpath.PxPerMm(360, -1)
		assert.ErrorIs(t, err, svgpath.ErrInvalidGeometry)
	})

	t.Run("round trip", func(t *testing.T) {
		px, err := svgpath.MmToPx(25, 180, 360)
		require.NoError(t, err)
		mm, err := svgpath.PxToMm(px, 180, 360)
		require.NoError(t, err)
		assert.InDelta(t, 25.0, mm, 1e-9)
	})
}

func TestPointAt(t *testing.T) {
	// Two equal segments forming a right angle: (0,0)→(100,0)→(100,100)
	p, err := svgpath.Parse("M 0 0 L 100 0 L 100 100")
	require.NoError(t, err)

	t.Run("endpoints and midpoint", func(t *testing.T) {
		cases := []struct {
			name string
			t    float64
			want svgpath.Point
		}{
			{name: "start", t: 0, want: svgpath.Point{X: 0, Y: 0}},
			{name: "quarter", t: 0.25, want: svgpath.Point{X: 50, Y: 0}},
			{name: "corner", t: 0.5, want: svgpath.Point{X: 100, Y: 0}},
			{name: "three quarters", t: 0.75, want: svgpath.Point{X: 100, Y: 50}},
			{name: "end", t: 1, want: svgpath.Point{X: 100, Y: 100}},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				got := p.PointAt(c.t)
				assert.InDelta(t, c.want.X, got.X, 1e-9)
				assert.InDelta(t, c.want.Y, got.Y, 1e-9)
			})
		}
	})

	t.Run("t is clamped", func(t *testing.T) {
		start := p.PointAt(-0.5)
		end := p.PointAt(1.5)
		assert.Equal(t, p.PointAt(0), start)
		assert.Equal(t, p.PointAt(1), end)
	})
}

func TestTangentAndNormal(t *testing.T) {
	p, err := svgpath.Parse("M 0 0 L 100 0 L 100 100")
	require.NoError(t, err)

	t.Run("horizontal segment", func(t *testing.T) {
		assert.InDelta(t, 0.0, p.TangentAngle(0.25), 1e-9)
		n := p.Normal(0.25)
		assert.InDelta(t, 0.0, n.X, 1e-9)
		assert.InDelta(t, 1.0, n.Y, 1e-9)
	})

	t.Run("vertical segment", func(t *testing.T) {
		assert.InDelta(t, 90.0, p.TangentAngle(0.75), 1e-9)
		n := p.Normal(0.75)
		assert.InDelta(t, -1.0, n.X, 1e-9)
		assert.InDelta(t, 0.0, n.Y, 1e-9)
	})

	t.Run("normal is unit length", func(t *testing.T) {
		for _, tt := range []float64{0, 0.1, 0.5, 0.9, 1} {
			n := p.Normal(tt)
			assert.InDelta(t, 1.0, math.Hypot(n.X, n.Y), 1e-9)
		}
	})
}

func TestRotate(t *testing.T) {
	t.Run("quarter turn", func(t *testing.T) {
		got := svgpath.Rotate(svgpath.Point{X: 1, Y: 0}, 90)
		assert.InDelta(t, 0.0, got.X, 1e-9)
		assert.InDelta(t, 1.0, got.Y, 1e-9)
	})

	t.Run("full turn is identity", func(t *testing.T) {
		got := svgpath.Rotate(svgpath.Point{X: 3, Y: -4}, 360)
		assert.InDelta(t, 3.0, got.X, 1e-9)
		assert.InDelta(t, -4.0, got.Y, 1e-9)
	})

	t.Run("negative angle", func(t *testing.T) {
		got := svgpath.Rotate(svgpath.Point{X: 0, Y: 1}, -90)
		assert.InDelta(t, 1.0, got.X, 1e-9)
		assert.InDelta(t, 0.0, got.Y, 1e-9)
	})
}
