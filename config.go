package treelog

import (
	"fmt"
)

// Config declaratively describes thresholds and additivity for a set of
// loggers. It is applied programmatically through Registry.Apply; there is
// no file or environment configuration surface.
type Config struct {
	Loggers []LoggerConfig `validate:"dive"`
}

// LoggerConfig configures one named logger. An empty Name addresses the
// root. Unset fields leave the logger unchanged.
type LoggerConfig struct {
	// Name is the dotted logger name; missing ancestors are created.
	Name string

	// Level is a level name as accepted by ParseLevel.
	Level string `validate:"omitempty,oneof=all trace debug info warn warning error fatal off inherit"`

	// Additive overrides the propagation flag when non-nil.
	Additive *bool
}

// Apply validates cfg and applies it to the hierarchy, creating any loggers
// it names. The registry is unchanged if validation fails; a level that
// fails to parse aborts mid-apply.
func (r *Registry) Apply(cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for _, lc := range cfg.Loggers {
		l := r.Logger(lc.Name)
		if lc.Level != "" {
			level, err := ParseLevel(lc.Level)
			if err != nil {
				return fmt.Errorf("logger %q: %w", lc.Name, err)
			}
			l.SetLevel(level)
		}
		if lc.Additive != nil {
			l.SetAdditive(*lc.Additive)
		}
	}
	return nil
}
