package rocket

// Orientation is one element of the 24-element rotation group of the cube:
// a signed permutation of the three axes. It packs into a single byte as
// 0xyzXXYY: one sign-flip bit per logical axis, then the physical axes
// that X and Y map to. Z's image is the axis left unused by X and Y.
type Orientation uint8

// OrientationIdentity maps every axis to itself with no sign flip.
const OrientationIdentity Orientation = 0b0_000_00_01

// zImage derives Z's mapped axis from the images of X and Y.
func (o Orientation) zImage() uint8 {
	return ^(uint8(o) ^ (uint8(o) >> 2)) & 3
}

// TransformAxis maps a logical axis to its physical axis, reporting whether
// the axis's sign flips (the two opposite faces trade places).
func (o Orientation) TransformAxis(a Axis) (Axis, bool) {
	var mapped uint8
	switch a {
	case AxisX:
		mapped = (uint8(o) >> 2) & 3
	case AxisY:
		mapped = uint8(o) & 3
	default:
		mapped = o.zImage()
	}
	return Axis(mapped), o&(1<<(6-uint8(a))) != 0
}

// TransformMove maps a move through the orientation: the axis is remapped,
// and a sign flip swaps the positive and negative turn multiples.
func (o Orientation) TransformMove(m Move) Move {
	axis, flip := o.TransformAxis(m.Axis())
	pos, neg := m.Positive(), m.Negative()
	if flip {
		pos, neg = neg, pos
	}
	return NewMove(axis, pos, neg)
}

func (o Orientation) transformSignedAxis(a Axis, sign bool) (Axis, bool) {
	mapped, flip := o.TransformAxis(a)
	return mapped, sign != flip
}

// Transform composes two orientations: the result applies p first, then o.
// The group is non-abelian, so the order matters everywhere this is called.
func (o Orientation) Transform(p Orientation) Orientation {
	x, xflip := o.transformSignedAxis(p.TransformAxis(AxisX))
	y, yflip := o.transformSignedAxis(p.TransformAxis(AxisY))
	_, zflip := o.transformSignedAxis(p.TransformAxis(AxisZ))
	return pack(x, y, xflip, yflip, zflip)
}

// Inverse returns the orientation undoing o, so that
// o.Inverse().Transform(o) is the identity.
func (o Orientation) Inverse() Orientation {
	var axes [3]Axis
	var flips [3]bool
	for a := AxisX; a <= AxisZ; a++ {
		mapped, flip := o.TransformAxis(a)
		axes[mapped] = a
		flips[mapped] = flip
	}
	return pack(axes[AxisX], axes[AxisY], flips[AxisX], flips[AxisY], flips[AxisZ])
}

func pack(x, y Axis, xflip, yflip, zflip bool) Orientation {
	var bits uint8
	if xflip {
		bits |= 1 << 6
	}
	if yflip {
		bits |= 1 << 5
	}
	if zflip {
		bits |= 1 << 4
	}
	return Orientation(bits | uint8(x)<<2 | uint8(y))
}
