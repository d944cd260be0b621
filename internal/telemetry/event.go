package telemetry

import (
	"time"
)

type event struct {
	id          string
	eventType   EventType
	executionID string
	time        time.Time
	elapsed     time.Duration
	command     string
	profile     string
	userID      string
	version     string
	data        []EventData
}

// EventType is the stage of a command execution an event reports
type EventType string

// set of supported event types
const (
	EventTypeCommandStart    EventType = "COMMAND_START"
	EventTypeCommandComplete EventType = "COMMAND_COMPLETE"
	EventTypeCommandError    EventType = "COMMAND_ERROR"
)

// EventData is a key-value pair attached to an event
type EventData struct {
	Key   EventDataKey
	Value interface{}
}

// EventDataKey is the key of an EventData entry
type EventDataKey string

// set of supported event data keys
const (
	EventDataKeyError  EventDataKey = "err"
	EventDataKeyStatus EventDataKey = "status"
)
