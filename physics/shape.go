package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType identifies a collision shape.
type ShapeType int

const (
	ShapeSphere ShapeType = iota
	ShapeCylinder
	ShapeBox
)

// Shape is a collision shape in body-local space. Cylinders stand along the
// local Y axis.
type Shape struct {
	Type        ShapeType
	Radius      float64    // sphere, cylinder
	HalfHeight  float64    // cylinder
	HalfExtents mgl64.Vec3 // box
}

// Sphere creates a sphere shape.
func Sphere(radius float64) Shape {
	return Shape{Type: ShapeSphere, Radius: radius}
}

// Cylinder creates an upright cylinder shape.
func Cylinder(radius, height float64) Shape {
	return Shape{Type: ShapeCylinder, Radius: radius, HalfHeight: height / 2}
}

// Box creates a box shape.
func Box(halfExtents mgl64.Vec3) Shape {
	return Shape{Type: ShapeBox, HalfExtents: halfExtents}
}

// BoundingRadius returns the radius of a sphere enclosing the shape.
func (s Shape) BoundingRadius() float64 {
	switch s.Type {
	case ShapeCylinder:
		return math.Hypot(s.Radius, s.HalfHeight)
	case ShapeBox:
		return s.HalfExtents.Len()
	default:
		return s.Radius
	}
}

// ContactRadius is the radius used when the shape touches another body.
// Boxes use their smallest half extent averaged with the largest so thin
// shapes still register hits.
func (s Shape) ContactRadius() float64 {
	switch s.Type {
	case ShapeCylinder:
		return s.Radius
	case ShapeBox:
		e := s.HalfExtents
		lo := math.Min(e.X(), math.Min(e.Y(), e.Z()))
		hi := math.Max(e.X(), math.Max(e.Y(), e.Z()))
		return (lo + hi) / 2
	default:
		return s.Radius
	}
}

// Inertia returns a scalar moment of inertia. Cylinders use the tipping
// axis (perpendicular to Y) since that is the motion that matters here.
func (s Shape) Inertia(mass float64) float64 {
	switch s.Type {
	case ShapeCylinder:
		h := 2 * s.HalfHeight
		return mass * (3*s.Radius*s.Radius + h*h) / 12
	case ShapeBox:
		e := s.HalfExtents.Mul(2)
		return mass * (e.Dot(e)) / 18
	default:
		return 0.4 * mass * s.Radius * s.Radius
	}
}

// ExtentBelow returns how far the shape reaches below its center along
// world Y for the given orientation.
func (s Shape) ExtentBelow(orientation mgl64.Quat) float64 {
	return s.Extent(orientation, mgl64.Vec3{0, 1, 0})
}

// Extent returns how far the shape reaches from its center along the unit
// world direction dir for the given orientation.
func (s Shape) Extent(orientation mgl64.Quat, dir mgl64.Vec3) float64 {
	switch s.Type {
	case ShapeCylinder:
		up := orientation.Rotate(mgl64.Vec3{0, 1, 0})
		ud := math.Abs(up.Dot(dir))
		return s.HalfHeight*ud + s.Radius*math.Sqrt(math.Max(0, 1-ud*ud))
	case ShapeBox:
		e := s.HalfExtents
		var extent float64
		for i, axis := range []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
			extent += e[i] * math.Abs(orientation.Rotate(axis).Dot(dir))
		}
		return extent
	default:
		return s.Radius
	}
}

// segment returns the body-space core segment of the shape: the cylinder
// axis for cylinders, a point otherwise.
func (s Shape) segment(position mgl64.Vec3, orientation mgl64.Quat) (mgl64.Vec3, mgl64.Vec3) {
	if s.Type != ShapeCylinder {
		return position, position
	}
	axis := orientation.Rotate(mgl64.Vec3{0, s.HalfHeight, 0})
	return position.Sub(axis), position.Add(axis)
}
