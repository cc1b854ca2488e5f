package config

import (
	"os"
	"strconv"
)

// IsDebug reports whether DEPT_DEBUG holds a true value ("1", "t", "true", ...).
// Unset or unparsable values mean false.
func IsDebug() bool {
	on, err := strconv.ParseBool(os.Getenv("DEPT_DEBUG"))
	return err == nil && on
}
