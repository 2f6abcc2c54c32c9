package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/platformcore/internal/domain/entity"
)

// WorldLayer is the collision category of stage geometry
const WorldLayer uint32 = 1 << 0

const (
	boundsThickness  = 1.0
	solverIterations = 20

	// contactEpsilon absorbs float drift between faces that should be flush
	contactEpsilon = 1e-6
)

// World is a chipmunk space holding the stage as static boxes.
// World coordinates are y-up with the origin at the bottom-left of the stage.
type World struct {
	space  *cp.Space
	bodies []*Body
	width  float64
	height float64
}

// NewWorld builds static geometry from the solid tiles of stage plus a
// segment border around the stage bounds
func NewWorld(stage *entity.Stage) *World {
	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetGravity(cp.Vector{})

	w := &World{
		space:  space,
		width:  float64(stage.Width * stage.TileSize),
		height: float64(stage.Height * stage.TileSize),
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(WorldLayer), cp.ALL_CATEGORIES)
	ts := float64(stage.TileSize)
	for _, r := range stage.SolidRects() {
		bb := cp.BB{
			L: float64(r.X) * ts,
			B: w.height - float64(r.Y+r.H)*ts,
			R: float64(r.X+r.W) * ts,
			T: w.height - float64(r.Y)*ts,
		}
		shape := cp.NewBox2(space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetFilter(filter)
		space.AddShape(shape)
	}

	border := []struct{ a, b cp.Vector }{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w.width, Y: 0}},
		{a: cp.Vector{X: 0, Y: w.height}, b: cp.Vector{X: w.width, Y: w.height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: w.height}},
		{a: cp.Vector{X: w.width, Y: 0}, b: cp.Vector{X: w.width, Y: w.height}},
	}
	for _, seg := range border {
		shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, boundsThickness)
		shape.SetFriction(0)
		shape.SetFilter(filter)
		space.AddShape(shape)
	}

	return w
}

// Size returns the stage extents in world units
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Probe sweeps a circle from origin along dir and reports whether it meets a shape on a layer in mask.
// Contacts whose surface faces sideways to dir, such as a wall brushing the
// circle's flank, do not count.
func (w *World) Probe(origin entity.Vec2, radius float64, dir entity.Vec2, distance float64, mask uint32) bool {
	dir = dir.Normalized()
	a := toVector(origin)
	b := toVector(origin.Add(dir.Scale(distance)))
	back := toVector(dir.Scale(-1))

	// The space's own segment query culls by the bare segment, so gather
	// candidates by the swept bounds and test each shape with the radius.
	reach := cp.BB{
		L: math.Min(a.X, b.X) - radius,
		B: math.Min(a.Y, b.Y) - radius,
		R: math.Max(a.X, b.X) + radius,
		T: math.Max(a.Y, b.Y) + radius,
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))

	hit := false
	w.space.BBQuery(reach, filter, func(shape *cp.Shape, _ interface{}) {
		if hit || shape.Sensor() {
			return
		}
		var info cp.SegmentQueryInfo
		if shape.SegmentQuery(a, b, radius, &info) && info.Normal.Dot(back) > contactEpsilon {
			hit = true
		}
	}, nil)
	return hit
}

// Step moves every body by its velocity for dt seconds.
// Motion is clamped against solid shapes first, one axis at a time, so a
// body stops flush with a face. The blocked velocity component is cleared.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		w.clampMotion(b, dt)
	}
	w.space.Step(dt)
	for _, b := range w.bodies {
		b.clearBlocked()
	}
}

// AddBody creates a box body of the given size centered at center.
// The shape is placed on layer so probes can exclude it.
func (w *World) AddBody(center entity.Vec2, width, height float64, layer uint32) *Body {
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(toVector(center))
	w.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	w.space.AddShape(shape)

	b := &Body{
		body:  body,
		shape: shape,
		size:  entity.Vec2{X: width, Y: height},
	}
	w.bodies = append(w.bodies, b)
	return b
}

// ToWorld converts a y-down stage pixel position to world coordinates
func (w *World) ToWorld(px, py float64) entity.Vec2 {
	return entity.Vec2{X: px, Y: w.height - py}
}

// ToScreen converts a world position to y-down stage pixels
func (w *World) ToScreen(p entity.Vec2) (x, y float64) {
	return p.X, w.height - p.Y
}

func toVector(v entity.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) entity.Vec2 {
	return entity.Vec2{X: v.X, Y: v.Y}
}
