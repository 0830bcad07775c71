package hellosphere

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSphereCounts(t *testing.T) {

	tests := []struct {
		slices, stacks int
	}{
		{3, 2},
		{8, 4},
		{50, 50},
		{7, 13},
	}

	for _, tt := range tests {

		mesh, err := NewSphere(tt.slices, tt.stacks)
		require.NoError(t, err)

		assert.Len(t, mesh.Vertices, (tt.stacks-1)*tt.slices+2, "%d x %d", tt.slices, tt.stacks)
		assert.Len(t, mesh.Triangles, 2*tt.slices*(tt.stacks-1), "%d x %d", tt.slices, tt.stacks)

	}

}

func TestNewSphereIsUnitAndOutward(t *testing.T) {

	mesh, err := NewSphere(SphereSlices, SphereStacks)
	require.NoError(t, err)

	for i, v := range mesh.Vertices {
		assert.InDelta(t, 1, v.Magnitude(), 0.000001, "vertex %d", i)
	}

	for i, tri := range mesh.Triangles {
		// Outward normals mean counter-clockwise winding seen from outside.
		assert.Greater(t, tri.Normal.Dot(tri.Center()), 0.0, "triangle %d", i)
	}

}

func TestNewSpherePoles(t *testing.T) {

	mesh, err := NewSphere(6, 3)
	require.NoError(t, err)

	north := mesh.Vertices[0]
	south := mesh.Vertices[len(mesh.Vertices)-1]

	assert.InDelta(t, 1, north[2], 0.000001)
	assert.InDelta(t, -1, south[2], 0.000001)

	// Each pole is shared by a fan of one triangle per slice.
	northUses, southUses := 0, 0
	for _, tri := range mesh.Triangles {
		for _, index := range tri.Indices {
			switch int(index) {
			case 0:
				northUses++
			case len(mesh.Vertices) - 1:
				southUses++
			}
		}
	}
	assert.Equal(t, 6, northUses)
	assert.Equal(t, 6, southUses)

}

func TestNewSphereInvalid(t *testing.T) {

	for _, tt := range [][2]int{{0, 50}, {2, 50}, {50, 1}, {50, 0}, {-1, -1}, {math.MaxUint16, 3}} {
		_, err := NewSphere(tt[0], tt[1])
		assert.ErrorIs(t, err, ErrInvalidTessellation, "%v", tt)
	}

}

func BenchmarkNewSphere(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		NewSphere(SphereSlices, SphereStacks)
	}

}
