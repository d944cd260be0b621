package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/utec/diagram-cli/internal/terminal"
	"github.com/utec/diagram-cli/internal/utils/test/assert"
	"github.com/utec/diagram-cli/internal/utils/test/mock"
)

func TestUIPrint(t *testing.T) {
	t.Run("should select the correct writer to print with", func(t *testing.T) {
		for _, tc := range []struct {
			description string
			log         terminal.Log
			expectedOut string
			expectedErr string
		}{
			{
				description: "should use the default writer while printing an info log",
				log:         terminal.NewTextLog("test log"),
				expectedOut: "test log\n",
			},
			{
				description: "should use the default writer while printing a warning log",
				log:         terminal.NewWarningLog("test warning"),
				expectedOut: "test warning\n",
			},
			{
				description: "should use the error writer while printing an error log",
				log:         terminal.NewErrorLog(errors.New("something bad happened")),
				expectedErr: "something bad happened\n",
			},
		} {
			t.Run(tc.description, func(t *testing.T) {
				out, err := new(bytes.Buffer), new(bytes.Buffer)
				ui := terminal.NewUI(terminal.UIConfig{DisableColors: true}, nil, out, err)

				tc.log.Time = mock.StaticTime
				ui.Print(tc.log)

				assert.Equal(t, tc.expectedOut, out.String())
				assert.Equal(t, tc.expectedErr, err.String())
			})
		}
	})

	t.Run("should print json lines when configured", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := terminal.NewUI(terminal.UIConfig{OutputFormat: terminal.OutputFormatJSON}, nil, out, out)

		log := terminal.NewTextLog("test log")
		log.Time = mock.StaticTime
		ui.Print(log)

		assert.Equal(t, `{"time":"1989-06-22T01:23:45Z","level":"info","message":"test log"}`+"\n", out.String())
	})
}

func TestUIConfirm(t *testing.T) {
	t.Run("should proceed without prompting when auto confirm is set", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := terminal.NewUI(terminal.UIConfig{AutoConfirm: true}, nil, out, out)

		proceed, err := ui.Confirm("continue?")
		assert.Nil(t, err)
		assert.True(t, proceed, "expected to proceed")
		assert.Equal(t, "", out.String())
	})

	for _, tc := range []struct {
		answer   string
		expected bool
	}{
		{"y", true},
		{"n", false},
	} {
		t.Run("should return the answer to the prompt "+tc.answer, func(t *testing.T) {
			console, ui := mock.NewConsole(t)

			doneCh := make(chan struct{})
			go func() {
				defer close(doneCh)
				console.ExpectString("continue with user a@b.com?")
				console.SendLine(tc.answer)
				console.ExpectEOF()
			}()

			proceed, confirmErr := ui.Confirm("continue with user %s?", "a@b.com")
			assert.Nil(t, confirmErr)

			assert.Nil(t, console.Tty().Close())
			<-doneCh

			assert.Equal(t, tc.expected, proceed)
		})
	}
}
