package raycast

import "math"

// MoveDirection selects one of the four axis-aligned movement commands.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
	MoveLeft
	MoveRight
)

// RotateDirection selects the sign of a rotation step.
type RotateDirection int

const (
	RotateLeft RotateDirection = iota
	RotateRight
)

// Vec2 is a 2D point or vector in world pixel coordinates.
type Vec2 struct {
	X, Y float64
}

// Observer is the movable, rotatable viewpoint rays are cast from. The
// heading and camera-plane vectors are stored relative to the center, so
// movement translates the whole apparatus rigidly and rotation only touches
// the vector components. Observer is a value type: Move and Rotate return a
// new state and never mutate the receiver.
type Observer struct {
	Center Vec2
	// Dir is the heading vector relative to Center. Its magnitude scales
	// the field of view together with Plane.
	Dir Vec2
	// Plane is the camera-plane half-vector, relative to the heading end.
	Plane Vec2
	// Radius of the observer marker in the top-down view.
	Radius float64
}

// Move translates the observer by one movement step along the given axis.
// The derived heading and camera-plane segments translate with the center.
func (o Observer) Move(dir MoveDirection, speed float64) Observer {
	switch dir {
	case MoveUp:
		o.Center.Y -= speed
	case MoveDown:
		o.Center.Y += speed
	case MoveLeft:
		o.Center.X -= speed
	case MoveRight:
		o.Center.X += speed
	}
	return o
}

// Rotate turns the heading and camera-plane vectors by one angular step,
// negative for left and positive for right. Both vectors rotate by the
// identical angle, so their relative orientation is preserved.
func (o Observer) Rotate(dir RotateDirection, step float64) Observer {
	angle := step
	if dir == RotateLeft {
		angle = -step
	}
	sin, cos := math.Sincos(angle)

	o.Dir = Vec2{
		X: o.Dir.X*cos - o.Dir.Y*sin,
		Y: o.Dir.X*sin + o.Dir.Y*cos,
	}
	o.Plane = Vec2{
		X: o.Plane.X*cos - o.Plane.Y*sin,
		Y: o.Plane.X*sin + o.Plane.Y*cos,
	}
	return o
}

// DirectionSegment returns the heading ray in absolute coordinates, from
// the observer center to the heading end.
func (o Observer) DirectionSegment() (Vec2, Vec2) {
	end := Vec2{X: o.Center.X + o.Dir.X, Y: o.Center.Y + o.Dir.Y}
	return o.Center, end
}

// CameraPlaneSegment returns the camera plane in absolute coordinates. The
// plane straddles the heading end, one half-vector to each side; its length
// sets the field-of-view width.
func (o Observer) CameraPlaneSegment() (Vec2, Vec2) {
	_, dirEnd := o.DirectionSegment()
	start := Vec2{X: dirEnd.X - o.Plane.X, Y: dirEnd.Y - o.Plane.Y}
	end := Vec2{X: dirEnd.X + o.Plane.X, Y: dirEnd.Y + o.Plane.Y}
	return start, end
}
