package rotorcast

// Pose is a rigid transform: rotate by Ori, then translate by Pos.
type Pose struct {
	Pos Vec3
	Ori Rotor
}

func NewPose(pos Vec3, ori Rotor) Pose {
	return Pose{Pos: pos, Ori: ori}
}

func IdentityPose() Pose {
	return Pose{Ori: IdentityRotor()}
}

// Mul composes two poses so the result is b's frame expressed in a's
// parent frame. Not commutative.
func (a Pose) Mul(b Pose) Pose {
	return Pose{
		Pos: a.Pos.Add(a.Ori.Rotate(b.Pos)),
		Ori: a.Ori.Mul(b.Ori),
	}
}

// Inverse assumes Ori is unit length, so its conjugate is its inverse.
//
//	   T(x) = R @ x + t
//	=> T^-1(x) = R^-1 @ x - R^-1 @ t
func (p Pose) Inverse() Pose {
	return Pose{
		Pos: p.Ori.InverseRotate(p.Pos).Neg(),
		Ori: p.Ori.Conjugate(),
	}
}

// Apply transforms a point: rotation first, then translation.
func (p Pose) Apply(v Vec3) Vec3 {
	return p.Pos.Add(p.Ori.Rotate(v))
}
