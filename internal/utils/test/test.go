package testutils

import (
	"os"
	"testing"
)

// set of environment variables used to configure integration tests
const (
	envNoSkipTest    = "DIAGRAM_NO_SKIP_TEST"
	envServerBaseURL = "DIAGRAM_SERVER_BASE_URL"
	envUserEmail     = "DIAGRAM_TEST_USER_EMAIL"
	envUserPassword  = "DIAGRAM_TEST_USER_PASSWORD"
)

// MustSkipf skips a test suite, but panics if DIAGRAM_NO_SKIP_TEST is set
func MustSkipf(t *testing.T, format string, args ...interface{}) {
	t.Helper()
	if len(os.Getenv(envNoSkipTest)) > 0 {
		panic("test was skipped, but " + envNoSkipTest + " is set")
	}
	t.Skipf(format, args...)
}

// ServerURL returns the diagram API server url to use for testing
func ServerURL() string {
	return os.Getenv(envServerBaseURL)
}

// UserEmail returns the email of the diagram API user to use for testing
func UserEmail() string {
	return os.Getenv(envUserEmail)
}

// UserPassword returns the password of the diagram API user to use for testing
func UserPassword() string {
	return os.Getenv(envUserPassword)
}

// SkipUnlessServerConfigured skips tests if no diagram API server
// and test user are configured (see: ServerURL(), UserEmail(), UserPassword())
func SkipUnlessServerConfigured(t *testing.T) {
	t.Helper()
	if ServerURL() == "" || UserEmail() == "" || UserPassword() == "" {
		MustSkipf(t, "diagram API server is not configured, set %s, %s and %s", envServerBaseURL, envUserEmail, envUserPassword)
	}
}
