package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aidanlsb/sift/internal/query"
)

// LoadJSON reads a JSON file holding an array of objects, or a single
// object, as tuples.
func LoadJSON(path string) ([]query.Tuple, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tuplesFromDecoded(path, raw)
}

// tuplesFromDecoded converts decoder output into the engine's tuple shape.
func tuplesFromDecoded(path string, raw any) ([]query.Tuple, error) {
	switch v := raw.(type) {
	case []any:
		tuples := make([]query.Tuple, 0, len(v))
		for i, elem := range v {
			m, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: element %d is %T, want an object", path, i, elem)
			}
			tuples = append(tuples, query.Tuple(m))
		}
		return tuples, nil
	case map[string]any:
		return []query.Tuple{query.Tuple(v)}, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("%s: top-level value is %T, want an array of objects", path, raw)
}
