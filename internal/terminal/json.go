package terminal

import (
	"encoding/json"

	"github.com/fatih/color"
)

const (
	logFieldTitle = "title"
	logFieldDoc   = "doc"
)

// jsonDocument is a backend response printed as indented JSON
// A plain string response is printed as is and an empty one prints nothing
type jsonDocument struct {
	data interface{}
}

func (j jsonDocument) Message() (string, error) {
	switch data := j.data.(type) {
	case nil:
		return "", nil
	case string:
		return data, nil
	}

	doc, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(doc), nil
}

func (j jsonDocument) Payload() ([]string, map[string]interface{}, error) {
	return []string{logFieldDoc}, map[string]interface{}{logFieldDoc: j.data}, nil
}

type titledJSONDocument struct {
	title string
	jsonDocument
}

func (tj titledJSONDocument) Message() (string, error) {
	doc, err := tj.jsonDocument.Message()
	if err != nil {
		return "", err
	}

	title := color.New(color.Bold).Sprint(tj.title)
	if doc == "" {
		return title, nil
	}
	return title + "\n" + doc, nil
}

func (tj titledJSONDocument) Payload() ([]string, map[string]interface{}, error) {
	return []string{logFieldTitle, logFieldDoc}, map[string]interface{}{
		logFieldTitle: tj.title,
		logFieldDoc:   tj.data,
	}, nil
}
