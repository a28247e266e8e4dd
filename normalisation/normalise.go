package normalisation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dave-shawley/coercion/stringify"
)

// ErrNotAContainer is returned when the root passed to Normalise is neither
// a sequence nor a mapping.
var ErrNotAContainer = errors.New("non-container root")

type kind int

const (
	leaf kind = iota
	sequence
	keyed
)

// classify reports how a value takes part in the traversal.
// Byte slices and byte arrays are scalars, not sequences.
func classify(rv reflect.Value) kind {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return leaf
		}
		return sequence
	case reflect.Map:
		return keyed
	default:
		return leaf
	}
}

// Normalise returns a new container of the same shape as root in which every
// leaf value and every mapping key has been passed through
// stringify.Stringify. Nested containers are normalised the same way.
//
// root must be a slice, an array or a map, otherwise an error wrapping
// ErrNotAContainer is returned. Errors from stringify.Stringify are returned
// unchanged. No partial result is returned on error.
//
// The recursive equivalent is
//
//	switch {
//	case mapping:  {Stringify(k): Normalise(v) for k, v in root}
//	case sequence: [Normalise(e) for e in root]
//	default:       Stringify(root)
//	}
//
// It is unrolled with two stacks. pending holds values still to be
// processed together with the slot their result is inserted into. created
// records every output container in creation order, so the first entry is
// the container built for root. A container is registered with its parent
// as soon as it is allocated and filled in later through the slots of its
// children.
func Normalise(root any, opts ...Option) (any, error) {
	var o Options
	for _, opt := range opts {
		opt.ApplyToOptions(&o)
	}

	var created []any
	pending := []item{{value: root}}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		rv := reflect.ValueOf(current.value)
		switch classify(rv) {
		case sequence:
			target := make([]any, rv.Len())
			if current.slot != nil {
				current.slot.insert(target)
			}
			created = append(created, target)
			for i := range target {
				pending = append(pending, item{
					value: rv.Index(i).Interface(),
					slot:  sequenceSlot{target: target, index: i},
				})
			}
		case keyed:
			target := newMapping(rv.Len(), o)
			if current.slot != nil {
				current.slot.insert(target.container())
			}
			created = append(created, target.container())
			for _, e := range sortedEntries(rv) {
				key, err := stringify.Stringify(e.key.Interface())
				if err != nil {
					return nil, err
				}
				pending = append(pending, item{
					value: e.value.Interface(),
					slot:  target.slot(key),
				})
			}
		default:
			if current.slot == nil {
				return nil, fmt.Errorf("%w: type %T", ErrNotAContainer, current.value)
			}
			v, err := stringify.Stringify(current.value)
			if err != nil {
				return nil, err
			}
			current.slot.insert(v)
		}
	}

	return created[0], nil
}

func newMapping(size int, o Options) mapping {
	if o.StringKeys {
		return make(stringMapping, size)
	}
	return make(anyMapping, size)
}
