// Package serialisation encodes normalised containers.
//
// Every encoder first runs normalisation.Normalise with string keys, so
// uuids, timestamps and byte buffers anywhere in the input are written as
// their canonical strings. Encoders are looked up by name from a registry:
//
//	data, err := serialisation.Encode(map[string]any{"id": uuid.New()}, serialisation.JCS)
//
// The JCS encoder produces the JSON Canonicalization Scheme of RFC 8785, so
// logically equal inputs encode to identical bytes.
package serialisation
