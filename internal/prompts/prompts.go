package prompts

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Prompt is one record of the prompts data file.
type Prompt struct {
	Topic  string `yaml:"topic" json:"topic"`
	Style  string `yaml:"style" json:"style"`
	Length string `yaml:"length" json:"length"`
}

// Load reads a prompts file holding an ordered list of prompt records, either
// as a bare list or nested under a top-level "prompts" key. YAML and JSON
// documents are both accepted.
func Load(path string) ([]Prompt, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	var list []Prompt
	if err := yaml.Unmarshal(b, &list); err != nil {
		var wrapped struct {
			Prompts []Prompt `yaml:"prompts" json:"prompts"`
		}
		if err2 := yaml.Unmarshal(b, &wrapped); err2 != nil {
			return nil, fmt.Errorf("parse prompts file: %w", err)
		}
		list = wrapped.Prompts
	}
	if len(list) == 0 {
		return nil, errors.New("prompts file contains no prompts")
	}
	return list, nil
}

// Select returns the prompt for a 1-based index, cycling modulo the prompt
// count so a rotation longer than the list wraps around. An index of zero or
// below selects by day of year.
func Select(list []Prompt, index int, now time.Time) Prompt {
	if index <= 0 {
		index = now.YearDay()
	}
	return list[(index-1)%len(list)]
}
