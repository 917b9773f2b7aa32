package svgpath

import (
	"math"

	"charmforge/internal/pkg/errs"
)

// ErrInvalidGeometry signals a non-positive physical length. It means the
// catalog data is corrupt, not that the caller sent bad input.
var ErrInvalidGeometry = errs.New("svgpath: physical length must be positive")

// PxPerMm returns the pixel-per-millimetre ratio for a bracelet whose path
// measures viewBoxLengthPx in path units and physicalLengthMm on the wrist.
func PxPerMm(viewBoxLengthPx, physicalLengthMm float64) (float64, error) {
	if physicalLengthMm <= 0 {
		return 0, ErrInvalidGeometry
	}
	return viewBoxLengthPx / physicalLengthMm, nil
}

// MmToPx converts a physical distance to path units.
func MmToPx(mm, physicalLengthMm, viewBoxLengthPx float64) (float64, error) {
	ratio, err := PxPerMm(viewBoxLengthPx, physicalLengthMm)
	if err != nil {
		return 0, err
	}
	return mm * ratio, nil
}

// PxToMm converts a path-unit distance to millimetres.
func PxToMm(px, physicalLengthMm, viewBoxLengthPx float64) (float64, error) {
	ratio, err := PxPerMm(viewBoxLengthPx, physicalLengthMm)
	if err != nil {
		return 0, err
	}
	return px / ratio, nil
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// locate returns the polyline segment containing fractional distance t and
// the interpolation factor within it. t is clamped; placements store t as a
// trusted internal parameter, so out-of-range values are corrected rather
// than rejected.
func (p *Path) locate(t float64) (i int, frac float64) {
	t = clamp01(t)
	if len(p.points) < 2 || p.total == 0 {
		return 0, 0
	}
	target := t * p.total

	lo, hi := 1, len(p.cumLen)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if p.cumLen[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	segStart := p.cumLen[lo-1]
	segLen := p.cumLen[lo] - segStart
	if segLen == 0 {
		return lo - 1, 0
	}
	return lo - 1, (target - segStart) / segLen
}

// PointAt resolves the point at fractional distance t along the path.
func (p *Path) PointAt(t float64) Point {
	if len(p.points) == 0 {
		return Point{}
	}
	if len(p.points) == 1 || p.total == 0 {
		return p.points[0]
	}
	i, frac := p.locate(t)
	a, b := p.points[i], p.points[i+1]
	return Point{
		X: a.X + (b.X-a.X)*frac,
		Y: a.Y + (b.Y-a.Y)*frac,
	}
}

// TangentAngle returns the path direction at t in degrees.
func (p *Path) TangentAngle(t float64) float64 {
	dx, dy := p.direction(t)
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// Normal returns the unit vector perpendicular to the path at t. Positive
// offsets displace charms toward the normal side.
func (p *Path) Normal(t float64) Point {
	dx, dy := p.direction(t)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return Point{}
	}
	return Point{X: -dy / n, Y: dx / n}
}

func (p *Path) direction(t float64) (dx, dy float64) {
	if len(p.points) < 2 {
		return 0, 0
	}
	i, _ := p.locate(t)
	// Skip zero-length segments so duplicated points do not kill the tangent.
	for i+1 < len(p.points) {
		a, b := p.points[i], p.points[i+1]
		if a != b {
			return b.X - a.X, b.Y - a.Y
		}
		i++
	}
	a, b := p.points[len(p.points)-2], p.points[len(p.points)-1]
	return b.X - a.X, b.Y - a.Y
}

// Rotate rotates pt about the origin by deg degrees.
func Rotate(pt Point, deg float64) Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Point{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
