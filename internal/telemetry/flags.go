package telemetry

import (
	"fmt"
	"strings"
)

// set of telemetry flags
const (
	FlagMode      = "telemetry"
	FlagModeUsage = `Enable or disable telemetry (this setting is remembered), available options: ["off", "stdout"]`
)

// Mode is the telemetry mode
type Mode string

// String returns the string representation
func (m Mode) String() string { return string(m) }

// Type returns the Mode type
func (m Mode) Type() string { return "string" }

// Set validates and sets the telemetry mode value
func (m *Mode) Set(val string) error {
	mode := Mode(val)

	if !isValidMode(mode) {
		allModes := []string{ModeOff.String(), ModeStdout.String()}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allModes, ", "))
	}

	*m = mode
	return nil
}

// set of supported telemetry modes
const (
	ModeEmpty  Mode = "" // zero-valued to be flag's default
	ModeOff    Mode = "off"
	ModeStdout Mode = "stdout"
)

func isValidMode(mode Mode) bool {
	switch mode {
	case
		ModeEmpty,
		ModeOff,
		ModeStdout:
		return true
	}
	return false
}
