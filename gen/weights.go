package gen

import (
	"os"

	"github.com/BurntSushi/toml"
)

// LoadWeights reads a weights TOML file, starting from DefaultWeights
// so a file may override only one of the two fields.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, err
	}
	if _, err := toml.Decode(string(data), &w); err != nil {
		return Weights{}, err
	}
	return w, nil
}
