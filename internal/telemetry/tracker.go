package telemetry

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Tracker records telemetry events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}

func (tracker *noopTracker) Close() {}

type stdoutTracker struct {
	w io.Writer
}

func (tracker *stdoutTracker) Track(event event) {
	fields := []string{
		string(event.eventType),
		"id=" + event.id,
		"execution_id=" + event.executionID,
		"command=" + event.command,
	}
	if event.profile != "" {
		fields = append(fields, "profile="+event.profile)
	}
	fields = append(fields, "version="+event.version)
	if event.userID != "" {
		fields = append(fields, "user="+event.userID)
	}
	if event.elapsed > 0 {
		fields = append(fields, "elapsed="+event.elapsed.Round(time.Millisecond).String())
	}
	for _, datum := range event.data {
		fields = append(fields, fmt.Sprintf("%s=%v", datum.Key, datum.Value))
	}

	fmt.Fprintf(tracker.w, "%s UTC TELEMETRY %s\n", event.time.In(time.UTC).Format("15:04:05"), strings.Join(fields, " "))
}

func (tracker *stdoutTracker) Close() {}
