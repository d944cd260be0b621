package terminal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/iancoleman/orderedmap"
)

// LogLevel is the level of a terminal log
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
	LogLevelWarn  LogLevel = "warn"
	LogLevelDebug LogLevel = "debug"
)

// LogData produces the log data
type LogData interface {
	Message() (string, error)
	Payload() ([]string, map[string]interface{}, error)
}

// Log is a terminal log
type Log struct {
	Level LogLevel
	Time  time.Time
	Data  LogData
}

// NewTextLog creates a new log with a text message
func NewTextLog(format string, args ...interface{}) Log {
	return newLog(LogLevelInfo, newTextMessage(format, args...))
}

// NewDebugLog creates a new debug log with a text message
func NewDebugLog(format string, args ...interface{}) Log {
	return newLog(LogLevelDebug, newTextMessage(format, args...))
}

// NewWarningLog creates a new warning log with a text message
func NewWarningLog(format string, args ...interface{}) Log {
	return newLog(LogLevelWarn, newTextMessage(format, args...))
}

// NewJSONLog creates a new log with a JSON document
func NewJSONLog(data interface{}) Log {
	return newLog(LogLevelInfo, jsonDocument{data})
}

// NewTitledJSONLog creates a new log with a titled JSON document
func NewTitledJSONLog(title string, data interface{}) Log {
	return newLog(LogLevelInfo, titledJSONDocument{title, jsonDocument{data}})
}

// NewListLog creates a new log with a list
func NewListLog(message string, data ...interface{}) Log {
	return newLog(LogLevelInfo, newList(message, data))
}

// NewFollowupLog creates a new debug log suggesting followup actions
func NewFollowupLog(message string, items ...interface{}) Log {
	return newLog(LogLevelDebug, newList(message, items))
}

// NewErrorLog creates a new error log
func NewErrorLog(err error) Log {
	return newLog(LogLevelError, errorMessage{err})
}

func newLog(level LogLevel, data LogData) Log {
	return Log{level, time.Now(), data}
}

// Print produces the log output based on the specified format
func (l Log) Print(outputFormat OutputFormat) (string, error) {
	switch outputFormat {
	case OutputFormatText:
		return l.textOutput()
	case OutputFormatJSON:
		return l.jsonOutput()
	default:
		return "", fmt.Errorf("unsupported output format type: %s", outputFormat)
	}
}

func (l Log) textOutput() (string, error) {
	message, err := l.Data.Message()
	if err != nil {
		return "", err
	}

	switch l.Level {
	case LogLevelError:
		return color.New(color.FgRed).Sprint(message), nil
	case LogLevelWarn:
		return color.New(color.FgYellow).Sprint(message), nil
	}
	return message, nil
}

const (
	logFieldLevel = "level"
	logFieldTime  = "time"
)

func (l Log) jsonOutput() (string, error) {
	out := orderedmap.New()
	out.Set(logFieldTime, l.Time)
	out.Set(logFieldLevel, l.Level)

	keys, payload, err := l.Data.Payload()
	if err != nil {
		return "", err
	}
	for _, key := range keys {
		out.Set(key, payload[key])
	}

	output, outputErr := json.Marshal(out)
	return string(output), outputErr
}
