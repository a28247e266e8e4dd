package stringify

import (
	"reflect"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Stringify returns the canonical string representation of v if its type is
// one of the recognised types, or v unchanged otherwise.
//
// It returns a *DecodeError for byte content that is not valid UTF-8. An
// *io.SectionReader whose underlying ReadAt fails is the only other source
// of errors.
func Stringify(v any) (any, error) {
	if isNil(v) {
		return v, nil
	}

	out := v
	for _, r := range rules {
		if !r.matches(v) {
			continue
		}
		var err error
		if out, err = r.convert(v); err != nil {
			return nil, err
		}
		break
	}

	if b, ok := rawBytes(out); ok {
		text, err := decode(b)
		if err != nil {
			return nil, err
		}
		return text, nil
	}
	return out, nil
}

// decode validates b as UTF-8 and returns it as a string.
func decode(b []byte) (string, error) {
	valid, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", &DecodeError{Offset: n, Err: err}
	}
	return string(valid), nil
}

// rawBytes reports whether v is a byte slice, including named types such
// as json.RawMessage, and returns its content.
func rawBytes(v any) ([]byte, bool) {
	if b, ok := v.([]byte); ok {
		return b, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return rv.Bytes(), true
	}
	return nil, false
}

// isNil catches typed nil pointers so that methods of recognised types are
// never invoked on a nil receiver.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
