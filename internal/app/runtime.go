package app

import (
	"os"
	"strconv"
)

// TestModeEnv names the variable that, when true, makes cmd/medicare exit
// before dialing Redis or the backend.
const TestModeEnv = "MEDICARE_TEST_MODE"

// InTestMode reports whether TestModeEnv is set to a true value.
func InTestMode() bool {
	on, err := strconv.ParseBool(os.Getenv(TestModeEnv))
	return err == nil && on
}
