package shapes

import (
	"errors"
	"fmt"
	"sync"

	"github.com/glintrt/glint/pkg/core"
)

// ErrInvalidOperator reports an unrecognized CSG operation. This is a
// programming error and is fatal at construction time.
var ErrInvalidOperator = errors.New("invalid CSG operator")

// Operation is a CSG boolean combination operator
type Operation int

const (
	// OpUnion keeps the hits on the outer boundary of both solids
	OpUnion Operation = iota
	// OpIntersection keeps hits where one solid overlaps the other
	OpIntersection
	// OpDifference keeps what is left of the left solid after
	// subtracting the right one
	OpDifference
)

// String returns the operator name
func (op Operation) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// CSG combines exactly two child shapes with a boolean set operation.
// Nested CSG nodes compose more complex solids. A CSG node owns both
// children exclusively.
type CSG struct {
	baseShape
	operation Operation
	left      Shape
	right     Shape

	mu           sync.Mutex
	boundsCached bool
	bounds       Bounds
}

// NewCSG creates a CSG node combining left and right with the given
// operation. Unknown operations are rejected.
func NewCSG(op Operation, left, right Shape) (*CSG, error) {
	switch op {
	case OpUnion, OpIntersection, OpDifference:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidOperator, op)
	}

	c := &CSG{baseShape: newBaseShape(), operation: op, left: left, right: right}
	c.material = nil
	return c, nil
}

// Operation returns the node's operator
func (c *CSG) Operation() Operation { return c.operation }

// Left returns the left child
func (c *CSG) Left() Shape { return c.left }

// Right returns the right child
func (c *CSG) Right() Shape { return c.right }

// LocalIntersect is never called for CSG nodes; the Intersect walk handles
// children directly
func (c *CSG) LocalIntersect(core.Ray) []Intersection {
	return nil
}

// LocalNormalAt is never called for CSG nodes; only leaf shapes are hit
func (c *CSG) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return core.NewVector(0, 0, 0)
}

// Bounds returns the merged bounds of both children in the node's space.
// The cache is filled under a mutex for the same reason as Group.Bounds.
func (c *CSG) Bounds() Bounds {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.boundsCached {
		c.bounds = c.left.Bounds().Transform(c.left.Transform()).
			Merge(c.right.Bounds().Transform(c.right.Transform()))
		c.boundsCached = true
	}
	return c.bounds
}

// intersectionAllowed is the CSG truth table. For each hit it decides,
// from which child was struck and which solids currently contain the ray,
// whether the hit lies on the combined solid's boundary. Total over all
// eight (leftHit, inLeft, inRight) combinations for each operator.
func (c *CSG) intersectionAllowed(leftHit, inLeft, inRight bool) bool {
	switch c.operation {
	case OpUnion:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case OpIntersection:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case OpDifference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	default:
		return false
	}
}

// filterIntersections walks the merged, sorted hit sequence, toggling the
// inside flags as boundaries are crossed, and keeps only the hits the
// truth table allows
func (c *CSG) filterIntersections(xs []Intersection) []Intersection {
	inLeft := false
	inRight := false

	var filtered []Intersection
	for _, x := range xs {
		leftHit := Includes(c.left, x.Object)

		if c.intersectionAllowed(leftHit, inLeft, inRight) {
			filtered = append(filtered, x)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return filtered
}
