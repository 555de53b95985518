package appconf

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment is the operating mode of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment converts a flag or config value to an Environment.
// Unrecognised values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test", "testing":
		return Test
	case "prod", "production":
		return Production
	default:
		return Development
	}
}

// MarshalYAML writes the environment as its name.
func (e Environment) MarshalYAML() (any, error) {
	return e.String(), nil
}

// UnmarshalYAML accepts the environment name.
func (e *Environment) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	*e = EnvFlagToEnvironment(name)
	return nil
}
