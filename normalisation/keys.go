package normalisation

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// entry is a single key/value pair of an input map.
type entry struct {
	key, value reflect.Value
}

// sortedEntries returns the entries of the map rv in a stable order so that
// a given input is always traversed the same way. Values are taken from the
// iterator, since keys such as NaN cannot be looked up again.
func sortedEntries(rv reflect.Value) []entry {
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key(), value: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := compareKeys(a.key, b.key); c != 0 {
			return c
		}
		// self-unequal keys (NaN) can occur more than once
		return cmp.Compare(fmt.Sprint(a.value.Interface()), fmt.Sprint(b.value.Interface()))
	})
	return entries
}

// compareKeys orders keys by kind first and by value within a kind.
// Keys that compare equal by value are ordered by type name and finally by
// their formatted representation.
func compareKeys(a, b reflect.Value) int {
	a, b = concrete(a), concrete(b)
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(validity(a), validity(b))
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	if c := compareScalars(a, b); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Type().String(), b.Type().String()); c != 0 {
		return c
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

// compareScalars compares two values of the same kind. Kinds without a
// natural order compare as equal.
func compareScalars(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	default:
		return 0
	}
}

func concrete(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func validity(v reflect.Value) int {
	if v.IsValid() {
		return 1
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
