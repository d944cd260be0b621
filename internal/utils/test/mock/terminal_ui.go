package mock

import (
	"bytes"
	"testing"
	"time"

	"github.com/utec/diagram-cli/internal/terminal"

	"github.com/Netflix/go-expect"
	"github.com/hinshun/vt10x"
)

// StaticTime is the time stamped on every log printed by a mock terminal UI
var StaticTime = time.Date(1989, 6, 22, 1, 23, 45, 0, time.UTC)

var uiConfig = terminal.UIConfig{DisableColors: true, OutputFormat: terminal.OutputFormatText}

type staticTimeUI struct {
	terminal.UI
}

func (ui staticTimeUI) Print(logs ...terminal.Log) {
	for i := range logs {
		logs[i].Time = StaticTime
	}
	ui.UI.Print(logs...)
}

// NewUI returns a mock terminal UI printing both command output and errors to the returned buffer
func NewUI() (*bytes.Buffer, terminal.UI) {
	out := new(bytes.Buffer)
	return out, staticTimeUI{terminal.NewUI(uiConfig, nil, out, out)}
}

// NewConsole creates a virtual terminal for the duration of the test
// along with a mock terminal UI reading its prompt answers from it
func NewConsole(t *testing.T) (*expect.Console, terminal.UI) {
	t.Helper()

	console, _, err := vt10x.NewVT10XConsole(expect.WithStdout(new(bytes.Buffer)))
	if err != nil {
		t.Fatalf("failed to create console: %s", err)
	}
	t.Cleanup(func() { console.Close() })

	tty := console.Tty()
	return console, staticTimeUI{terminal.NewUI(uiConfig, tty, tty, tty)}
}
