package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/KirkDiggler/passdrill/internal/drill"
	"github.com/KirkDiggler/passdrill/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	startLineKey      = "start_line"
	startDirectionKey = "start_direction"
)

// LineConfig is a drill layout read from YAML:
//
//	0: 5
//	1: 5
//	2: 1
//	3: 3
//	start_line: 0
//	start_direction: right
//
// Integer keys are line ids and values their player counts.
type LineConfig struct {
	// Lines maps a line id to its player count
	Lines map[int]int

	// StartLine overrides the starting line when set
	StartLine *int

	// StartDirection overrides the starting direction when set
	StartDirection models.Direction
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *LineConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: got %s", ErrInvalidLineConfig, value.Tag)
	}

	c.Lines = make(map[int]int)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		switch key.Value {
		case startLineKey:
			var line int
			if err := val.Decode(&line); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidStartLine, err)
			}
			c.StartLine = &line
		case startDirectionKey:
			var direction string
			if err := val.Decode(&direction); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidDirection, err)
			}
			c.StartDirection = models.Direction(direction)
		default:
			line, err := strconv.Atoi(key.Value)
			if err != nil {
				return fmt.Errorf("%w: got %q", ErrInvalidLineKey, key.Value)
			}
			var count int
			if err := val.Decode(&count); err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrInvalidLineValue, line, err)
			}
			c.Lines[line] = count
		}
	}

	return nil
}

// Validate checks the values a drill cannot be built from
func (c *LineConfig) Validate() error {
	for line, count := range c.Lines {
		if line < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidLineKey, line)
		}
		if count <= 0 {
			return fmt.Errorf("%w: line %d has %d", ErrInvalidLineValue, line, count)
		}
	}
	if c.StartLine != nil && *c.StartLine < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStartLine, *c.StartLine)
	}
	if c.StartDirection != "" && !c.StartDirection.IsValid() {
		return fmt.Errorf("%w: got %q", ErrInvalidDirection, c.StartDirection)
	}
	return nil
}

// ApplyTo overrides the drill config with the values set in the file
func (c *LineConfig) ApplyTo(cfg *drill.Config) {
	if len(c.Lines) > 0 {
		cfg.LineCounts = c.Lines
	}
	if c.StartLine != nil {
		cfg.StartingLine = *c.StartLine
	}
	if c.StartDirection != "" {
		cfg.Direction = c.StartDirection
	}
}

// LoadLineConfig reads and validates a YAML line configuration file. An
// empty file yields an empty configuration.
func LoadLineConfig(path string) (*LineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read line config: %w", err)
	}

	var cfg LineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse line config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid line config: %w", err)
	}

	return &cfg, nil
}
