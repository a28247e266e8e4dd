package normalisation

import (
	"fmt"
)

// item is a pending unit of work: a value and the slot its normalised form
// is written to. The root has no slot.
type item struct {
	value any
	slot  slot
}

// slot is a deferred insertion into an already registered output container.
type slot interface {
	insert(v any)
}

type sequenceSlot struct {
	target []any
	index  int
}

func (s sequenceSlot) insert(v any) {
	s.target[s.index] = v
}

type mappingSlot struct {
	target map[any]any
	key    any
}

func (s mappingSlot) insert(v any) {
	s.target[s.key] = v
}

type stringMappingSlot struct {
	target map[string]any
	key    string
}

func (s stringMappingSlot) insert(v any) {
	s.target[s.key] = v
}

// mapping hands out slots for a freshly allocated output mapping.
type mapping interface {
	container() any
	slot(key any) slot
}

type anyMapping map[any]any

func (m anyMapping) container() any { return map[any]any(m) }

func (m anyMapping) slot(key any) slot {
	return mappingSlot{target: m, key: key}
}

type stringMapping map[string]any

func (m stringMapping) container() any { return map[string]any(m) }

func (m stringMapping) slot(key any) slot {
	return stringMappingSlot{target: m, key: keyString(key)}
}

func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case nil:
		return "null"
	default:
		return fmt.Sprint(k)
	}
}
