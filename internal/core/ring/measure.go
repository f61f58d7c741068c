package ring

// ConstraintMode mirrors how a parent constrains one axis of a child.
type ConstraintMode int

const (
	Unspecified ConstraintMode = iota
	AtMost
	Exactly
)

// Constraint is the space offered on one axis.
type Constraint struct {
	Mode ConstraintMode
	Size float32
}

// Exact returns an exact constraint.
func Exact(size float32) Constraint {
	return Constraint{Mode: Exactly, Size: size}
}

// Measure reports a square size. Anything but two exact constraints yields
// the default side.
func Measure(width, height Constraint, defaultSide float32) (float32, float32) {
	if width.Mode != Exactly || height.Mode != Exactly {
		return defaultSide, defaultSide
	}
	side := width.Size
	if height.Size < side {
		side = height.Size
	}
	return side, side
}
