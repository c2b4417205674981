package check

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/outofforest/slist"
)

type operation int

const (
	opAdd operation = iota
	opRemove
	opGet
	opInvalidIndex
	opContains
	opFind
	opCopy
	opSort
	opCount
)

var operationNames = [opCount]string{
	opAdd:          "add",
	opRemove:       "remove",
	opGet:          "get",
	opInvalidIndex: "invalidIndex",
	opContains:     "contains",
	opFind:         "find",
	opCopy:         "copy",
	opSort:         "sort",
}

func (o operation) String() string {
	return operationNames[o]
}

// addWeight makes adds more frequent than the other operations, so lists grow.
const addWeight = 3

// scenario executes random operations on the list and on the slice modelling it.
type scenario struct {
	rnd      *rand.Rand
	maxValue int
	list     *slist.List[int]
	model    []int
}

func newScenario(seed int64, maxValue int) *scenario {
	return &scenario{
		rnd:      rand.New(rand.NewSource(seed)),
		maxValue: maxValue,
		list:     slist.New[int](),
	}
}

func runScenario(ctx context.Context, config Config, seed int64) error {
	s := newScenario(seed, config.MaxValue)

	for i := 0; i < config.Ops; i++ {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		op := s.nextOperation()
		if err := s.apply(op); err != nil {
			return errors.Wrapf(err, "operation %d (%s) failed", i, op)
		}
		if err := verify(s.list, s.model); err != nil {
			return errors.Wrapf(err, "list corrupted by operation %d (%s)", i, op)
		}
	}

	return nil
}

func (s *scenario) nextOperation() operation {
	n := s.rnd.Intn(int(opCount) + addWeight - 1)
	if n >= int(opCount) {
		return opAdd
	}
	return operation(n)
}

func (s *scenario) apply(op operation) error {
	switch op {
	case opAdd:
		v := s.rnd.Intn(s.maxValue)
		s.list.Add(v)
		s.model = append(s.model, v)
	case opRemove:
		if len(s.model) == 0 {
			return s.invalidIndex()
		}
		index := s.rnd.Intn(len(s.model))
		if err := s.list.Remove(index); err != nil {
			return err
		}
		s.model = slices.Delete(s.model, index, index+1)
	case opGet:
		if len(s.model) == 0 {
			return s.invalidIndex()
		}
		index := s.rnd.Intn(len(s.model))
		v, err := s.list.Get(index)
		if err != nil {
			return err
		}
		if v != s.model[index] {
			return errors.Errorf("get(%d) returned %d, expected %d", index, v, s.model[index])
		}
	case opInvalidIndex:
		return s.invalidIndex()
	case opContains:
		v := s.rnd.Intn(s.maxValue + 1)
		if actual, expected := s.list.Contains(v), slices.Contains(s.model, v); actual != expected {
			return errors.Errorf("contains(%d) returned %t, expected %t", v, actual, expected)
		}
	case opFind:
		v := s.rnd.Intn(s.maxValue + 1)
		if actual, expected := s.list.Find(v), slices.Index(s.model, v); actual != expected {
			return errors.Errorf("find(%d) returned %d, expected %d", v, actual, expected)
		}
	case opCopy:
		return s.copyAndMutate()
	case opSort:
		s.list.Sort()
		slices.Sort(s.model)
	default:
		return errors.Errorf("unknown operation %d", op)
	}
	return nil
}

func (s *scenario) invalidIndex() error {
	index := -1 - s.rnd.Intn(10)
	if s.rnd.Intn(2) == 0 {
		index = len(s.model) + s.rnd.Intn(10)
	}

	if _, err := s.list.Get(index); !errors.Is(err, slist.ErrIndexOutOfBounds) {
		return errors.Errorf("get(%d) on list of size %d returned %v", index, len(s.model), err)
	}
	if err := s.list.Remove(index); !errors.Is(err, slist.ErrIndexOutOfBounds) {
		return errors.Errorf("remove(%d) on list of size %d returned %v", index, len(s.model), err)
	}
	return nil
}

// copyAndMutate verifies that the copy is equal to the original and that both evolve independently.
func (s *scenario) copyAndMutate() error {
	c := s.list.Copy()
	if err := verify(c, s.model); err != nil {
		return errors.Wrap(err, "copy differs from original")
	}

	copyModel := slices.Clone(s.model)

	// maxValue is never added to the original.
	c.Add(s.maxValue)
	copyModel = append(copyModel, s.maxValue)
	if err := c.Remove(0); err != nil {
		return err
	}
	copyModel = copyModel[1:]
	c.Sort()
	slices.Sort(copyModel)

	if err := verify(c, copyModel); err != nil {
		return errors.Wrap(err, "mutated copy")
	}
	if s.list.Contains(s.maxValue) {
		return errors.New("mutation of copy leaked to original")
	}

	s.list.Add(s.maxValue + 1)
	if c.Contains(s.maxValue + 1) {
		return errors.New("mutation of original leaked to copy")
	}
	return s.list.Remove(len(s.model))
}

func verify(l *slist.List[int], model []int) error {
	if l.Size() != len(model) {
		return errors.Errorf("size is %d, expected %d", l.Size(), len(model))
	}
	if actual, expected := l.String(), fmt.Sprint(model); actual != expected {
		return errors.Errorf("list is %s, expected %s", actual, expected)
	}
	return nil
}
