package serialisation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"sigs.k8s.io/yaml"

	"github.com/dave-shawley/coercion/normalisation"
)

const (
	// JSON is indented JSON with two spaces.
	JSON Algorithm = "json"
	// JCS is JSON in the canonical form of RFC 8785.
	JCS Algorithm = "jcs"
	// YAML is YAML as produced by sigs.k8s.io/yaml.
	YAML Algorithm = "yaml"
)

// prepare normalises v into a tree that encoding/json can marshal.
func prepare(v any) (any, error) {
	return normalisation.Normalise(v, normalisation.WithStringKeys(true))
}

func marshal(v any, indent string) ([]byte, error) {
	normalised, err := prepare(v)
	if err != nil {
		return nil, err
	}
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(normalised); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// EncodeJSON normalises v and encodes it as indented JSON.
func EncodeJSON(v any) ([]byte, error) {
	return marshal(v, "  ")
}

// EncodeJCS normalises v and encodes it as canonical JSON (RFC 8785).
func EncodeJCS(v any) ([]byte, error) {
	data, err := marshal(v, "")
	if err != nil {
		return nil, err
	}
	data, err = jsoncanonicalizer.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("cannot canonicalize json: %w", err)
	}
	return data, nil
}

// EncodeYAML normalises v and encodes it as YAML.
func EncodeYAML(v any) ([]byte, error) {
	normalised, err := prepare(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(normalised)
}
