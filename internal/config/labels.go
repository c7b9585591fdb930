package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLabels is the built-in label list used when no labels file and no
// request labels are provided.
var DefaultLabels = []string{
	"technology", "finance", "healthcare",
	"education", "marketing", "research",
	"environment", "sports", "entertainment",
	"politics", "science",
}

// LabelsConfig represents the structure of the labels.yaml file.
// Named label sets are easier to manage in YAML than env vars.
type LabelsConfig struct {
	DefaultSet string           `yaml:"default_set"`
	Sets       []LabelSetConfig `yaml:"sets"`
}

// LabelSetConfig defines a named set of candidate labels.
type LabelSetConfig struct {
	Name          string   `yaml:"name"`
	Labels        []string `yaml:"labels"`
	MinConfidence float64  `yaml:"min_confidence,omitempty"` // 0 means inherit the global threshold
}

// LoadLabelsConfig loads the YAML labels configuration file.
// Path is determined by LABELS_FILE env var, defaulting to "labels.yaml".
// Returns nil without error if the file doesn't exist.
func LoadLabelsConfig() (*LabelsConfig, error) {
	path := getEnv("LABELS_FILE", "labels.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Labels file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg LabelsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultSetName returns the configured default set name, empty when unset.
func (c *LabelsConfig) DefaultSetName() string {
	if c == nil {
		return ""
	}
	return c.DefaultSet
}

// GetSet finds a label set by name.
func (c *LabelsConfig) GetSet(name string) *LabelSetConfig {
	if c == nil {
		return nil
	}
	for i := range c.Sets {
		if c.Sets[i].Name == name {
			return &c.Sets[i]
		}
	}
	return nil
}

// DefaultLabelList returns the configured default label set, falling back to
// the built-in list.
func (c *LabelsConfig) DefaultLabelList() []string {
	if c == nil {
		return DefaultLabels
	}
	if set := c.GetSet(c.DefaultSet); set != nil && len(set.Labels) > 0 {
		return set.Labels
	}
	return DefaultLabels
}
