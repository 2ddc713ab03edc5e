package linalg

// Mat3 is stored row-major. Columns are where the basis vectors land, which
// is what the diagrams draw.
type Mat3 [3][3]float64

func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Set builds a matrix from its entries listed row by row.
func Set(m11, m12, m13, m21, m22, m23, m31, m32, m33 float64) Mat3 {
	return Mat3{{m11, m12, m13}, {m21, m22, m23}, {m31, m32, m33}}
}

// Diag returns a matrix scaling each axis independently.
func Diag(x, y, z float64) Mat3 {
	return Set(x, 0, 0, 0, y, 0, 0, 0, z)
}

func (m Mat3) Col(i int) Vec3 { return Vec3{m[0][i], m[1][i], m[2][i]} }
func (m Mat3) Row(i int) Vec3 { return Vec3{m[i][0], m[i][1], m[i][2]} }

func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

// Mul returns m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.Row(i).Dot(o.Col(j))
		}
	}
	return r
}

func (m Mat3) Add(o Mat3) Mat3 {
	var r Mat3
	for i := range m {
		for j := range m[i] {
			r[i][j] = m[i][j] + o[i][j]
		}
	}
	return r
}

func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := range m {
		for j := range m[i] {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// Rows returns the entries as nested slices, trimmed to rows x cols.
func (m Mat3) Rows(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		copy(out[i], m[i][:cols])
	}
	return out
}
