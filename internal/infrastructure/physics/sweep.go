package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

type axis int

const (
	axisX axis = iota
	axisY
)

// clampMotion shortens b's velocity so this step ends flush with the first
// solid face on each axis. X is resolved before Y.
func (w *World) clampMotion(b *Body, dt float64) {
	v := b.body.Velocity()
	box := b.box()

	dx, blockedX := w.sweep(b, box, v.X*dt, axisX)
	box.L += dx
	box.R += dx
	dy, blockedY := w.sweep(b, box, v.Y*dt, axisY)

	b.blockedX, b.blockedY = blockedX, blockedY
	b.body.SetVelocityVector(cp.Vector{X: dx / dt, Y: dy / dt})
}

// sweep returns how far box travels along ax, at most delta, before touching
// a shape b collides with. Shapes already overlapping box are ignored so a
// wedged body can still move out.
func (w *World) sweep(b *Body, box cp.BB, delta float64, ax axis) (float64, bool) {
	if delta == 0 {
		return 0, false
	}

	reach := box
	sign := 1.0
	switch {
	case ax == axisX && delta > 0:
		reach.R += delta
	case ax == axisX:
		reach.L += delta
		sign = -1
	case delta > 0:
		reach.T += delta
	default:
		reach.B += delta
		sign = -1
	}

	allowed := math.Abs(delta)
	blocked := false
	w.space.BBQuery(reach, b.shape.Filter, func(shape *cp.Shape, _ interface{}) {
		if shape == b.shape || shape.Sensor() {
			return
		}
		s := shape.BB()

		var gap float64
		if ax == axisX {
			if s.T <= box.B+contactEpsilon || s.B >= box.T-contactEpsilon {
				return
			}
			gap = s.L - box.R
			if sign < 0 {
				gap = box.L - s.R
			}
		} else {
			if s.R <= box.L+contactEpsilon || s.L >= box.R-contactEpsilon {
				return
			}
			gap = s.B - box.T
			if sign < 0 {
				gap = box.B - s.T
			}
		}

		if gap < -contactEpsilon {
			return
		}
		gap = math.Max(gap, 0)
		if gap < allowed {
			allowed = gap
			blocked = true
		}
	}, nil)

	return allowed * sign, blocked
}
