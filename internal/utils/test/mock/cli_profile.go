package mock

import (
	"testing"

	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/session"
	u "github.com/utec/diagram-cli/internal/utils/test"
	"github.com/utec/diagram-cli/internal/utils/test/assert"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// NewProfile returns a new in-memory CLI profile with a random name
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	profile, err := user.NewProfileWithFs(newProfileName(), afero.NewMemMapFs())
	assert.Nil(t, err)
	return profile
}

// NewProfileFromTmpDir returns a new CLI profile with a random name
// persisted under a temporary home directory for the duration of the test
func NewProfileFromTmpDir(t *testing.T) *user.Profile {
	t.Helper()

	u.NewHomeDir(t)

	profile, err := user.NewProfile(newProfileName())
	assert.Nil(t, err)
	return profile
}

// NewProfileWithSession returns a new in-memory CLI profile holding the provided session
func NewProfileWithSession(t *testing.T, token string, sessionUser session.User) *user.Profile {
	t.Helper()

	profile := NewProfile(t)
	assert.Nil(t, profile.Session().SaveCredential(token, sessionUser))
	return profile
}

func newProfileName() string {
	return uuid.NewString()
}
