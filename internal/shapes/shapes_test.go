package shapes

import (
	"math"
	"testing"

	"github.com/fieldkit/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"circle", "line", "rounded-rect", "star", "wiggly"}, Names())
	for _, name := range Names() {
		s, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, s.Name)
		assert.NotEmpty(t, s.Description)
	}
}

func TestPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bbox   curve.Rect
		end    curve.Point
		length float64
	}{
		{"line", curve.Rect{X0: 0, Y0: 10, X1: 100, Y1: 10}, curve.Pt(100, 10), 100},
		{"circle", curve.Rect{X0: 0, Y0: 0, X1: 50, Y1: 50}, curve.Pt(50, 25), 50 * math.Pi},
		{"rounded-rect", curve.Rect{X0: 0, Y0: 0, X1: 50, Y1: 50}, curve.Pt(0, 8), 4*(50-16) + 16*math.Pi},
		{"star", curve.Rect{X0: 2.4, Y0: 0, X1: 97.6, Y1: 90.5}, curve.Pt(50, 0), 0},
		{"wiggly", curve.Rect{X0: 0, Y0: 0, X1: 200, Y1: 200.0 / 3}, curve.Pt(200, 50), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Path(tt.name, 0.01)
			require.NoError(t, err)

			bbox := p.BoundingBox()
			assert.InDelta(t, tt.bbox.X0, bbox.X0, 1e-6)
			assert.InDelta(t, tt.bbox.Y0, bbox.Y0, 1e-6)
			assert.InDelta(t, tt.bbox.X1, bbox.X1, 1e-6)
			assert.InDelta(t, tt.bbox.Y1, bbox.Y1, 1e-6)

			end := p.CurrentPoint()
			assert.InDelta(t, tt.end.X, end.X, 1e-9)
			assert.InDelta(t, tt.end.Y, end.Y, 1e-9)

			if tt.length != 0 {
				assert.InDelta(t, tt.length, p.Arclen(curve.DefaultAccuracy), 0.05)
			}
		})
	}
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	_, ok := Lookup("hexagon")
	assert.False(t, ok)
	_, err := Path("hexagon", 0.1)
	require.ErrorContains(t, err, `unknown shape "hexagon"`)
}
