package normalisation

// Option configures Normalise.
type Option interface {
	ApplyToOptions(*Options)
}

// Options holds the settings applied by Option values during Normalise.
type Options struct {
	// StringKeys renders every normalised mapping key that is not already a
	// string with fmt.Sprint and produces map[string]any instead of
	// map[any]any. A nil key becomes "null".
	StringKeys bool
}

// WithStringKeys is an Option that sets Options.StringKeys.
// Encoders that require string keys, like encoding/json, rely on it.
type WithStringKeys bool

func (w WithStringKeys) ApplyToOptions(o *Options) {
	o.StringKeys = bool(w)
}
