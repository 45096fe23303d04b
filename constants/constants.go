package constants

import "os"

// GetOutDir returns the directory rendered artifacts are written to.
func GetOutDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// MIDI rendering defaults.
const (
	TicksPerBeat = 960
	Tempo        = 120
	BasePitch    = 60 // C4
	Channel      = 0
	Velocity     = 90
)
