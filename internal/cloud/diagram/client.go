package diagram

import (
	"net/http"
	"os"

	"github.com/utec/diagram-cli/internal/session"
	"github.com/utec/diagram-cli/internal/utils/api"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const (
	// DefaultBaseURL is the base url of the production diagram API
	DefaultBaseURL = "https://nyzvqsqlp5.execute-api.us-east-1.amazonaws.com/dev"

	cliHeaderValue = "diagram-cli"
)

// Client is a diagram API client
type Client interface {
	Register(email, password string) (interface{}, error)
	Login(email, password string) (LoginResponse, error)

	GenerateDiagram(req GenerateRequest) (GenerateResponse, error)
	DownloadDiagram(id, format, filename string) (string, error)
}

// Config is the diagram client configuration
type Config struct {
	// BaseURL is the API base url, defaults to DefaultBaseURL
	BaseURL string

	// Session is the session store used to attach and persist credentials
	Session *session.Store

	// HTTPClient performs the requests, defaults to a new *http.Client
	HTTPClient *http.Client

	// Fs is the filesystem downloads are written to, defaults to the OS filesystem
	Fs afero.Fs

	// DownloadDir is the directory downloads are written to, defaults to the working directory
	DownloadDir string
}

// NewClient creates a new diagram client
func NewClient(config Config) Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Session == nil {
		config.Session = session.NewStore(session.NewMemoryStorage())
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{}
	}
	if config.Fs == nil {
		config.Fs = afero.NewOsFs()
	}
	if config.DownloadDir == "" {
		if wd, err := os.Getwd(); err == nil {
			config.DownloadDir = wd
		}
	}
	return &client{config}
}

type client struct {
	config Config
}

func (c *client) doJSON(method, path string, payload interface{}, header http.Header) (*http.Response, error) {
	options, err := api.JSONRequestOptions(payload)
	if err != nil {
		return nil, err
	}

	for key, values := range header {
		for _, value := range values {
			options.Header.Add(key, value)
		}
	}

	return c.do(method, path, options)
}

func (c *client) do(method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := http.NewRequest(method, c.config.BaseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	for key, values := range options.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	req.Header.Set(api.HeaderRequestOrigin, cliHeaderValue)
	req.Header.Set(api.HeaderRequestID, uuid.NewString())

	return c.config.HTTPClient.Do(req)
}

func isSuccess(res *http.Response) bool {
	return res.StatusCode >= 200 && res.StatusCode <= 299
}
