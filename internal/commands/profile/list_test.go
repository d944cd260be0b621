package profile

import (
	"testing"

	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	u "github.com/utec/diagram-cli/internal/utils/test"
	"github.com/utec/diagram-cli/internal/utils/test/assert"
	"github.com/utec/diagram-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestProfileList(t *testing.T) {
	t.Run("should show the profiles saved in the CLI home directory", func(t *testing.T) {
		u.NewHomeDir(t)

		fs := afero.NewOsFs()
		for _, name := range []string{"default", "dev"} {
			profile, err := user.NewProfileWithFs(name, fs)
			assert.Nil(t, err)
			assert.Nil(t, profile.Save())
		}

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Fs: fs}))

		assert.Equal(t, `Profiles
  default
  dev
`, out.String())
	})

	t.Run("should show a message when no profiles exist", func(t *testing.T) {
		u.NewHomeDir(t)

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Fs: afero.NewOsFs()}))

		assert.Equal(t, "No available profiles to show\n", out.String())
	})
}
