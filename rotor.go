package rotorcast

// Rotor is a unit quaternion: a scalar part plus the three bivector
// components e23, e13, e12. It represents an orientation whenever its
// magnitude is 1; renormalize after integrating angular deltas.
type Rotor struct {
	W   float32
	E23 float32
	E13 float32
	E12 float32
}

func IdentityRotor() Rotor {
	return Rotor{W: 1}
}

// RotorFromAngleAxis builds the rotor for a rotation of angle radians
// about axis. The axis is renormalized internally and must be non-zero.
func RotorFromAngleAxis(angle float32, axis Vec3) Rotor {
	half := angle * 0.5
	a := axis.Normalize().Scale(sin32(half))
	return Rotor{W: cos32(half), E23: a.X, E13: a.Y, E12: a.Z}
}

// Mul is the Hamilton product. Not commutative.
func (a Rotor) Mul(b Rotor) Rotor {
	return Rotor{
		W:   a.W*b.W - a.E23*b.E23 - a.E13*b.E13 - a.E12*b.E12,
		E23: a.W*b.E23 + a.E23*b.W + a.E13*b.E12 - a.E12*b.E13,
		E13: a.W*b.E13 - a.E23*b.E12 + a.E13*b.W + a.E12*b.E23,
		E12: a.W*b.E12 + a.E23*b.E13 - a.E13*b.E23 + a.E12*b.W,
	}
}

// Conjugate negates the bivector part. For a unit rotor this is the
// inverse.
func (q Rotor) Conjugate() Rotor {
	return Rotor{W: q.W, E23: -q.E23, E13: -q.E13, E12: -q.E12}
}

func (q Rotor) Magnitude() float32 {
	return sqrt32(q.W*q.W + q.E23*q.E23 + q.E13*q.E13 + q.E12*q.E12)
}

// Normalize rescales to unit magnitude. Zero rotors divide to
// non-finite components, as with Vec3.Normalize.
func (q Rotor) Normalize() Rotor {
	m := 1 / q.Magnitude()
	return Rotor{W: q.W * m, E23: q.E23 * m, E13: q.E13 * m, E12: q.E12 * m}
}

// Rotate applies the rotor to v. This is the expanded sandwich product
// v + 2*(u×(u×v) + w*(u×v)) with u the bivector part, which matches
// q * (0,v) * Conjugate(q) for unit rotors without the second
// quaternion multiply.
func (q Rotor) Rotate(v Vec3) Vec3 {
	u := Vec3{X: q.E23, Y: q.E13, Z: q.E12}
	uv := u.Cross(v)
	return v.Add(u.Cross(uv).Add(uv.Scale(q.W)).Scale(2))
}

// InverseRotate applies the conjugate rotor to v: negating the
// bivector part flips the sign of u×v, giving
// v + 2*(u×(u×v) - w*(u×v)).
func (q Rotor) InverseRotate(v Vec3) Vec3 {
	u := Vec3{X: q.E23, Y: q.E13, Z: q.E12}
	uv := u.Cross(v)
	return v.Add(u.Cross(uv).Sub(uv.Scale(q.W)).Scale(2))
}
