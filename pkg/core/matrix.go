package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateGeometry reports invalid geometric input detected at scene
// construction time: a singular transform or a zero-length ray direction.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Matrix is a 4x4 affine transform in row-major order.
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple applies the transform to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the transposed matrix
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Inverse returns the inverted matrix. Inversion is delegated to gonum;
// singular matrices are reported as ErrDegenerateGeometry so scene
// construction fails instead of tracing with a broken transform.
func (m Matrix) Inverse() (Matrix, error) {
	data := make([]float64, 0, 16)
	for row := 0; row < 4; row++ {
		data = append(data, m[row][0], m[row][1], m[row][2], m[row][3])
	}

	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(4, 4, data)); err != nil {
		return Matrix{}, fmt.Errorf("%w: singular transform: %v", ErrDegenerateGeometry, err)
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = inv.At(row, col)
		}
	}
	return result, nil
}

// Equals reports whether two matrices match within Epsilon per element
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) >= Epsilon {
				return false
			}
		}
	}
	return true
}
