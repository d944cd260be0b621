package terminal

import (
	"fmt"
	"strings"
)

const (
	logFieldData = "data"
)

// set of followup messages
const (
	MsgSuggestedCommands = "Try running instead"
)

var (
	listFields = []string{logFieldMessage, logFieldData}
)

type list struct {
	message string
	data    []string
}

func newList(message string, data []interface{}) list {
	l := list{message: message, data: make([]string, 0, len(data))}
	for _, item := range data {
		l.data = append(l.data, fmt.Sprint(item))
	}
	return l
}

func (l list) Message() (string, error) {
	items := make([]string, 0, len(l.data))
	for _, item := range l.data {
		items = append(items, "  "+item)
	}
	return fmt.Sprintf("%s\n%s", l.message, strings.Join(items, "\n")), nil
}

func (l list) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: l.message,
		logFieldData:    l.data,
	}, nil
}
