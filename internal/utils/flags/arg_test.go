package flags

import (
	"testing"

	"github.com/utec/diagram-cli/internal/utils/test/assert"
)

func TestArg(t *testing.T) {
	for _, tc := range []struct {
		description string
		arg         Arg
		expected    string
	}{
		{
			description: "should print only name when value is nil",
			arg:         Arg{Name: "yes"},
			expected:    " --yes",
		},
		{
			description: "should print name and value when set",
			arg:         Arg{"profile", "dev"},
			expected:    " --profile dev",
		},
		{
			description: "should quote values containing whitespace",
			arg:         Arg{"filename", "my diagram"},
			expected:    ` --filename "my diagram"`,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.arg.String())
		})
	}
}
