package entities

import (
	"fmt"
	"strings"
)

type OperatingMode string

const (
	TestMode       OperatingMode = "test"
	ProductionMode OperatingMode = "production"
)

// ParseOperatingMode maps a configured mode string to an OperatingMode.
// An empty value selects test mode.
func ParseOperatingMode(raw string) (OperatingMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "test", "sandbox":
		return TestMode, nil
	case "production", "prod", "live":
		return ProductionMode, nil
	default:
		return "", fmt.Errorf("unsupported operating mode %q", raw)
	}
}

func (mode OperatingMode) IsProduction() bool {
	return mode == ProductionMode
}

func (mode OperatingMode) String() string {
	return string(mode)
}
