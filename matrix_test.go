package hellosphere

import (
	"testing"

	"github.com/kvartborg/vector"
	"github.com/stretchr/testify/assert"
)

func BenchmarkMatrixMult(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4Translate(1, 4, -12)
	scale := NewMatrix4Scale(0.25, 0.25, 0.25)

	for i := 0; i < b.N; i++ {
		mat.Mult(scale)
	}

}

func TestMatrixMultIdentity(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4Translate(-10, 0.1, 3232.1976),
		NewMatrix4Scale(10, 0.1, -0.45),
		NewMatrix4Translate(-1, -1, -1).Mult(NewMatrix4Scale(10, 1, 0)),
	}

	for i, mat := range matrices {
		assert.True(t, mat.Mult(NewMatrix4()).Equals(mat), "matrix #%d * identity", i)
		assert.True(t, NewMatrix4().Mult(mat).Equals(mat), "identity * matrix #%d", i)
	}

	assert.True(t, NewMatrix4().IsIdentity())
	assert.False(t, NewMatrix4Scale(2, 1, 1).IsIdentity())

}

func TestMatrixMultOrder(t *testing.T) {

	// Scaling happens first, then translation.
	mat := NewMatrix4Translate(1, 2, 3).Mult(NewMatrix4Scale(2, 2, 2))

	v := mat.MultVecW(vector.Vector{1, 1, 1})
	assert.Equal(t, vector.Vector{3, 4, 5, 1}, v)

	mat = NewMatrix4Scale(2, 2, 2).Mult(NewMatrix4Translate(1, 2, 3))

	v = mat.MultVecW(vector.Vector{1, 1, 1})
	assert.Equal(t, vector.Vector{4, 6, 8, 1}, v)

}
