package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/sift/internal/query"
)

// LoadYAML reads a YAML file as tuples. The document may be a sequence of
// mappings or one mapping.
func LoadYAML(path string) ([]query.Tuple, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tuplesFromDecoded(path, raw)
}
