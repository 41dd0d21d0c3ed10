package rendering

// Matrix is a 2D affine transform:
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0  1  |
//
// Transforms compose in the usual right-to-left order: m.Multiply(n)
// applies n first, then m.
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// MatrixIdentity returns the identity transform.
func MatrixIdentity() Matrix {
	return Matrix{A: 1, D: 1}
}

// MatrixTranslation returns a transform that moves points by (tx, ty).
func MatrixTranslation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, TX: tx, TY: ty}
}

// MatrixScale returns a transform that scales points by (sx, sy).
func MatrixScale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// IsIdentity reports whether the matrix is (approximately) the identity.
func (m Matrix) IsIdentity() bool {
	return floatEqual(m.A, 1) && floatEqual(m.B, 0) &&
		floatEqual(m.C, 0) && floatEqual(m.D, 1) &&
		floatEqual(m.TX, 0) && floatEqual(m.TY, 0)
}

// Multiply returns m·n, the transform that applies n first and then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A:  m.A*n.A + m.C*n.B,
		B:  m.B*n.A + m.D*n.B,
		C:  m.A*n.C + m.C*n.D,
		D:  m.B*n.C + m.D*n.D,
		TX: m.A*n.TX + m.C*n.TY + m.TX,
		TY: m.B*n.TX + m.D*n.TY + m.TY,
	}
}

// Translated returns the matrix pre-translated by (tx, ty).
func (m Matrix) Translated(tx, ty float64) Matrix {
	return m.Multiply(MatrixTranslation(tx, ty))
}

// Scaled returns the matrix pre-scaled by (sx, sy).
func (m Matrix) Scaled(sx, sy float64) Matrix {
	return m.Multiply(MatrixScale(sx, sy))
}

// Apply transforms the given point.
func (m Matrix) Apply(p Offset) Offset {
	return Offset{
		X: m.A*p.X + m.C*p.Y + m.TX,
		Y: m.B*p.X + m.D*p.Y + m.TY,
	}
}

// ApplyToRect transforms the rect and returns its axis-aligned bounds.
func (m Matrix) ApplyToRect(r Rect) Rect {
	corners := [4]Offset{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
	out := Rect{Left: 1e18, Top: 1e18, Right: -1e18, Bottom: -1e18}
	for _, c := range corners {
		p := m.Apply(c)
		if p.X < out.Left {
			out.Left = p.X
		}
		if p.Y < out.Top {
			out.Top = p.Y
		}
		if p.X > out.Right {
			out.Right = p.X
		}
		if p.Y > out.Bottom {
			out.Bottom = p.Y
		}
	}
	return out
}
