package system

import (
	"errors"

	"github.com/younwookim/platformcore/internal/domain/entity"
)

// ErrConfiguration is returned when a controller is activated without a usable body or world
var ErrConfiguration = errors.New("controller configuration error")

// Body is the physical body a controller drives.
// The controller only writes velocity; integration belongs to the world.
type Body interface {
	SetVelocity(v entity.Vec2)
	// Bounds returns the center and full extents of the collision shape
	Bounds() (center, size entity.Vec2)
}

// World answers swept-shape queries against solid geometry
type World interface {
	// Probe sweeps a circle of radius from origin along dir for distance and
	// reports whether any shape on a layer in mask was hit
	Probe(origin entity.Vec2, radius float64, dir entity.Vec2, distance float64, mask uint32) bool
}

var (
	Down = entity.Vec2{X: 0, Y: -1}
	Up   = entity.Vec2{X: 0, Y: 1}
)
