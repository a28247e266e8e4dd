package serialisation

import (
	"fmt"

	yamlv3 "gopkg.in/yaml.v3"
)

// Decode parses a single YAML or JSON document with YAML 1.2 rules, so bare
// words like n, no or off stay strings. Mappings with only string keys
// decode to map[string]any, other mappings to map[any]any.
func Decode(data []byte) (any, error) {
	var v any
	if err := yamlv3.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cannot decode document: %w", err)
	}
	return v, nil
}
