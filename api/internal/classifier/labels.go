package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLabels reads a class_indices.json mapping of label -> class index, as
// written by the training pipeline, and inverts it to index -> label.
func LoadLabels(path string) (map[int]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class indices: %w", err)
	}
	var indices map[string]int
	if err := json.Unmarshal(b, &indices); err != nil {
		return nil, fmt.Errorf("parse class indices: %w", err)
	}
	labels := make(map[int]string, len(indices))
	for name, idx := range indices {
		labels[idx] = name
	}
	return labels, nil
}
