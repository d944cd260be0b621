package mock

import (
	"github.com/utec/diagram-cli/internal/cloud/diagram"
)

// DiagramClient is a mocked diagram client
type DiagramClient struct {
	diagram.Client
	RegisterFn        func(email, password string) (interface{}, error)
	LoginFn           func(email, password string) (diagram.LoginResponse, error)
	GenerateDiagramFn func(req diagram.GenerateRequest) (diagram.GenerateResponse, error)
	DownloadDiagramFn func(id, format, filename string) (string, error)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying diagram.Client implementation.
// NOTE: this may panic if the underlying diagram.Client is left undefined
func (dc DiagramClient) Register(email, password string) (interface{}, error) {
	if dc.RegisterFn != nil {
		return dc.RegisterFn(email, password)
	}
	return dc.Client.Register(email, password)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying diagram.Client implementation.
// NOTE: this may panic if the underlying diagram.Client is left undefined
func (dc DiagramClient) Login(email, password string) (diagram.LoginResponse, error) {
	if dc.LoginFn != nil {
		return dc.LoginFn(email, password)
	}
	return dc.Client.Login(email, password)
}

// GenerateDiagram calls the mocked GenerateDiagram implementation if provided,
// otherwise the call falls back to the underlying diagram.Client implementation.
// NOTE: this may panic if the underlying diagram.Client is left undefined
func (dc DiagramClient) GenerateDiagram(req diagram.GenerateRequest) (diagram.GenerateResponse, error) {
	if dc.GenerateDiagramFn != nil {
		return dc.GenerateDiagramFn(req)
	}
	return dc.Client.GenerateDiagram(req)
}

// DownloadDiagram calls the mocked DownloadDiagram implementation if provided,
// otherwise the call falls back to the underlying diagram.Client implementation.
// NOTE: this may panic if the underlying diagram.Client is left undefined
func (dc DiagramClient) DownloadDiagram(id, format, filename string) (string, error) {
	if dc.DownloadDiagramFn != nil {
		return dc.DownloadDiagramFn(id, format, filename)
	}
	return dc.Client.DownloadDiagram(id, format, filename)
}
