package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/utec/diagram-cli/internal/utils/api"
)

const (
	generatePath = "/diagrams/generate"
	downloadPath = "/diagrams/download"

	generateFailedMessage = "failed to generate diagram"
	downloadFailedMessage = "failed to download file"

	// DefaultFilename is the filename used for downloads when none is provided
	DefaultFilename = "diagram"
)

// GenerateRequest is the diagram generation request
type GenerateRequest struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// GenerateResponse is the diagram generation response
type GenerateResponse struct {
	ImageURL string `json:"imageUrl"`
	ID       string `json:"id,omitempty"`
	Success  bool   `json:"success"`
}

type downloadPayload struct {
	DiagramID string `json:"diagramId"`
	Format    string `json:"format"`
}

func (c *client) GenerateDiagram(req GenerateRequest) (GenerateResponse, error) {
	if !c.config.Session.IsAuthenticated() {
		return GenerateResponse{}, ErrUnauthenticated{"generate"}
	}

	res, resErr := c.doJSON(http.MethodPost, generatePath, req, c.config.Session.AuthorizationHeader())
	if resErr != nil {
		return GenerateResponse{}, resErr
	}
	defer res.Body.Close()

	if !isSuccess(res) {
		return GenerateResponse{}, parseResponseError(res, generateFailedMessage)
	}

	var out GenerateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return GenerateResponse{}, err
	}
	return out, nil
}

func (c *client) DownloadDiagram(id, format, filename string) (string, error) {
	if !c.config.Session.IsAuthenticated() {
		return "", ErrUnauthenticated{"download"}
	}

	path, err := c.downloadDiagram(id, format, filename)
	if err != nil {
		return "", DownloadError{format, err}
	}
	return path, nil
}

func (c *client) downloadDiagram(id, format, filename string) (string, error) {
	header := c.config.Session.AuthorizationHeader()
	if mediaType, ok := api.ContentTypeByExtension(format); ok {
		header.Set(api.HeaderAccept, mediaType)
	}

	res, resErr := c.doJSON(http.MethodPost, downloadPath, downloadPayload{id, format}, header)
	if resErr != nil {
		return "", resErr
	}
	defer res.Body.Close()

	if !isSuccess(res) {
		return "", parseResponseError(res, downloadFailedMessage)
	}

	if filename == "" {
		filename = DefaultFilename
	}
	path := fmt.Sprintf("%s.%s", filename, strings.ToLower(format))
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.config.DownloadDir, path)
	}

	if err := c.config.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	f, err := c.config.Fs.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, res.Body); err != nil {
		f.Close()
		_ = c.config.Fs.Remove(path)
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
