package core

import "math"

// Mat3 is a row-major 3x3 matrix
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMat3FromColumns builds a matrix whose columns are c0, c1 and c2
func NewMat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}
}

// Multiply returns the matrix product m * other
func (m Mat3) Multiply(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// MultiplyVec returns m * v treating v as a column vector
func (m Mat3) MultiplyVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// RotationX returns a rotation of degrees around the X axis
func RotationX(degrees float64) Mat3 {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns a rotation of degrees around the Y axis
func RotationY(degrees float64) Mat3 {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns a rotation of degrees around the Z axis
func RotationZ(degrees float64) Mat3 {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mat4 is a row-major 4x4 matrix
type Mat4 [4][4]float64

// Identity4 returns the 4x4 identity matrix
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// Multiply returns the matrix product m * other
func (m Mat4) Multiply(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// MultiplyVec returns m * v treating v as a column vector
func (m Mat4) MultiplyVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Translation returns an affine translation by offset
func Translation(offset Vec3) Mat4 {
	m := Identity4()
	m[0][3] = offset.X
	m[1][3] = offset.Y
	m[2][3] = offset.Z
	return m
}
