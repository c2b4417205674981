package slist

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Ordered is the constraint required from list values.
type Ordered = constraints.Ordered

// ErrIndexOutOfBounds is returned when index does not point to an existing element.
var ErrIndexOutOfBounds = errors.New("index out of bounds")
