package telemetry

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Config describes the command execution a Service reports on
type Config struct {
	Mode    Mode
	Writer  io.Writer
	Command string
	Profile string
	UserID  string
	Version string
}

// Service tracks the telemetry events of a single command execution
type Service struct {
	config      Config
	executionID string
	startedAt   time.Time
	tracker     Tracker
}

// NewService creates a new telemetry service
// Only the stdout mode with a writer records anything
func NewService(config Config) *Service {
	var tracker Tracker = &noopTracker{}
	if config.Mode == ModeStdout && config.Writer != nil {
		tracker = &stdoutTracker{config.Writer}
	}

	return &Service{
		config:      config,
		executionID: uuid.NewString(),
		startedAt:   time.Now(),
		tracker:     tracker,
	}
}

// TrackEvent tracks an event of the command execution
// Every event after the start carries the time elapsed since the service was created
func (service *Service) TrackEvent(eventType EventType, data ...EventData) {
	now := time.Now()

	var elapsed time.Duration
	if eventType != EventTypeCommandStart {
		elapsed = now.Sub(service.startedAt)
	}

	service.tracker.Track(event{
		id:          uuid.NewString(),
		eventType:   eventType,
		executionID: service.executionID,
		time:        now,
		elapsed:     elapsed,
		command:     service.config.Command,
		profile:     service.config.Profile,
		userID:      service.config.UserID,
		version:     service.config.Version,
		data:        data,
	})
}

// Close shuts down the Service
func (service *Service) Close() {
	service.tracker.Close()
}
