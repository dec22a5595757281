package raycast

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func testObserver() Observer {
	return Observer{
		Center: Vec2{X: 496, Y: 240},
		Dir:    Vec2{X: -16, Y: 0},
		Plane:  Vec2{X: 0, Y: 16},
		Radius: 16,
	}
}

// relativeAngle measures the angle between the heading and camera-plane
// vectors around the observer center.
func relativeAngle(o Observer) float64 {
	cross := o.Dir.X*o.Plane.Y - o.Dir.Y*o.Plane.X
	dot := o.Dir.X*o.Plane.X + o.Dir.Y*o.Plane.Y
	return math.Atan2(cross, dot)
}

func TestRotate_PreservesRelativeAngle(t *testing.T) {
	obs := testObserver()
	want := relativeAngle(obs)

	for i := 0; i < 200; i++ {
		obs = obs.Rotate(RotateRight, 0.013)
		if got := relativeAngle(obs); math.Abs(got-want) > tolerance {
			t.Fatalf("step %d: relative angle changed from %v to %v", i, want, got)
		}
	}
}

func TestRotate_RoundTrip(t *testing.T) {
	start := testObserver()
	obs := start

	const steps = 50
	for i := 0; i < steps; i++ {
		obs = obs.Rotate(RotateLeft, 0.01)
	}
	for i := 0; i < steps; i++ {
		obs = obs.Rotate(RotateRight, 0.01)
	}

	if math.Abs(obs.Dir.X-start.Dir.X) > tolerance || math.Abs(obs.Dir.Y-start.Dir.Y) > tolerance {
		t.Errorf("heading did not return: got (%v,%v), want (%v,%v)",
			obs.Dir.X, obs.Dir.Y, start.Dir.X, start.Dir.Y)
	}
	if math.Abs(obs.Plane.X-start.Plane.X) > tolerance || math.Abs(obs.Plane.Y-start.Plane.Y) > tolerance {
		t.Errorf("camera plane did not return: got (%v,%v), want (%v,%v)",
			obs.Plane.X, obs.Plane.Y, start.Plane.X, start.Plane.Y)
	}
}

func TestRotate_PreservesMagnitudes(t *testing.T) {
	obs := testObserver()
	dirLen := math.Hypot(obs.Dir.X, obs.Dir.Y)
	planeLen := math.Hypot(obs.Plane.X, obs.Plane.Y)

	obs = obs.Rotate(RotateRight, 1.3)

	if got := math.Hypot(obs.Dir.X, obs.Dir.Y); math.Abs(got-dirLen) > tolerance {
		t.Errorf("heading magnitude changed from %v to %v", dirLen, got)
	}
	if got := math.Hypot(obs.Plane.X, obs.Plane.Y); math.Abs(got-planeLen) > tolerance {
		t.Errorf("plane magnitude changed from %v to %v", planeLen, got)
	}
}

func TestMove_TranslatesRigidly(t *testing.T) {
	cases := []struct {
		name   string
		dir    MoveDirection
		dx, dy float64
	}{
		{"up", MoveUp, 0, -2},
		{"down", MoveDown, 0, 2},
		{"left", MoveLeft, -2, 0},
		{"right", MoveRight, 2, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := testObserver()
			after := before.Move(tc.dir, 2.0)

			if after.Center.X-before.Center.X != tc.dx || after.Center.Y-before.Center.Y != tc.dy {
				t.Fatalf("center moved by (%v,%v), want (%v,%v)",
					after.Center.X-before.Center.X, after.Center.Y-before.Center.Y, tc.dx, tc.dy)
			}

			bd0, bd1 := before.DirectionSegment()
			ad0, ad1 := after.DirectionSegment()
			bp0, bp1 := before.CameraPlaneSegment()
			ap0, ap1 := after.CameraPlaneSegment()

			pairs := []struct {
				name          string
				before, after Vec2
			}{
				{"direction start", bd0, ad0},
				{"direction end", bd1, ad1},
				{"plane start", bp0, ap0},
				{"plane end", bp1, ap1},
			}
			for _, p := range pairs {
				if p.after.X-p.before.X != tc.dx || p.after.Y-p.before.Y != tc.dy {
					t.Errorf("%s moved by (%v,%v), want (%v,%v)",
						p.name, p.after.X-p.before.X, p.after.Y-p.before.Y, tc.dx, tc.dy)
				}
			}
		})
	}
}

func TestMove_DoesNotMutateReceiver(t *testing.T) {
	obs := testObserver()
	_ = obs.Move(MoveRight, 2.0)
	_ = obs.Rotate(RotateLeft, 0.01)

	want := testObserver()
	if obs != want {
		t.Errorf("observer mutated in place: got %+v, want %+v", obs, want)
	}
}
