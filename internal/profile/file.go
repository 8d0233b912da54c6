package profile

import (
	"context"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore reads profiles from a JSON or YAML list document.
type FileStore struct{}

// Load reads source and decodes it as a list of profiles.
// Nothing rewrites JSON or YAML sources in place, so no lock is taken.
func (FileStore) Load(_ context.Context, source string) ([]Profile, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, unreadable(source, err)
	}

	var out []Profile
	switch FormatOf(source) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, malformed(source, err)
	}
	if out == nil {
		out = []Profile{}
	}
	return out, nil
}
