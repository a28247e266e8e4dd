// Package normalisation produces normalised copies of nested containers.
//
// Normalise walks a tree of sequences (slices and arrays) and mappings (maps)
// and builds a new tree of the same shape in which every leaf value and every
// mapping key has been passed through stringify.Stringify:
//
//	in := []any{[]byte("bytes"), [2]any{"tuple", []string{"list"}}}
//	out, err := normalisation.Normalise(in)
//	// out == []any{"bytes", []any{"tuple", []any{"list"}}}
//
// Sequences of any element type become []any, mappings become map[any]any,
// or map[string]any with WithStringKeys(true). Byte slices and byte arrays
// are treated as scalars. Pointers are never dereferenced.
//
// The traversal keeps its own work stack, so arbitrarily deep inputs do not
// grow the goroutine stack. Inputs are never modified.
package normalisation
