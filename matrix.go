package hellosphere

import (
	"math"
	"strconv"

	"github.com/kvartborg/vector"
)

// Matrix4 is a row-major 4x4 transformation matrix, applied to column vectors (so translation lives in the last
// column, as in OpenGL).
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4 translated by x, y and z.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][3] = x
	mat[1][3] = y
	mat[2][3] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4 scaled by x, y and z.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// Mult returns matrix * other; applied to a vector, other's transformation happens first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for r := 0; r < 4; r++ {

		for c := 0; c < 4; c++ {

			sum := 0.0

			for i := 0; i < 4; i++ {
				sum += matrix[r][i] * other[i][c]
			}

			newMat[r][c] = sum

		}

	}

	return newMat

}

// MultVecW transforms the 3D point vect (with an implied W of 1), returning the resulting 4D clip-space Vector.
func (matrix Matrix4) MultVecW(vect vector.Vector) vector.Vector {

	return vector.Vector{
		matrix[0][0]*vect[0] + matrix[0][1]*vect[1] + matrix[0][2]*vect[2] + matrix[0][3],
		matrix[1][0]*vect[0] + matrix[1][1]*vect[1] + matrix[1][2]*vect[2] + matrix[1][3],
		matrix[2][0]*vect[0] + matrix[2][1]*vect[1] + matrix[2][2]*vect[2] + matrix[2][3],
		matrix[3][0]*vect[0] + matrix[3][1]*vect[1] + matrix[3][2]*vect[2] + matrix[3][3],
	}

}

// Equals returns true if the matrix equals the other matrix within a small tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	for r := range matrix {
		for c := range matrix[r] {
			if math.Abs(matrix[r][c]-other[r][c]) > 0.00001 {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
