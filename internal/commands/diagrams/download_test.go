package diagrams

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cloud/diagram"
	"github.com/utec/diagram-cli/internal/session"
	"github.com/utec/diagram-cli/internal/utils/test/assert"
	"github.com/utec/diagram-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestDownloadHandler(t *testing.T) {
	t.Run("should download the diagram into the directory", func(t *testing.T) {
		profile := mock.NewProfile(t)

		var capturedID, capturedFormat, capturedFilename string
		diagramClient := mock.DiagramClient{}
		diagramClient.DownloadDiagramFn = func(id, format, filename string) (string, error) {
			capturedID, capturedFormat, capturedFilename = id, format, filename
			return "/work/out/diagram.svg", nil
		}

		cmd := &CommandDownload{downloadInputs{ID: "d1", Format: "SVG", Filename: "diagram", Dir: "out"}}

		out, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{Diagram: diagramClient}))

		assert.Equal(t, "d1", capturedID)
		assert.Equal(t, "SVG", capturedFormat)
		assert.Equal(t, "out/diagram", capturedFilename)
		assert.Equal(t, "Successfully downloaded diagram to /work/out/diagram.svg\n", out.String())
	})

	t.Run("should expose the download failure cause", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"message":"diagram not found"}`)
		}))
		defer server.Close()

		profile := mock.NewProfileWithSession(t, "T1", session.User{ID: "u1", Email: "a@b.com"})
		store := profile.Session()

		client := diagram.NewClient(diagram.Config{
			BaseURL:     server.URL,
			Session:     store,
			Fs:          afero.NewMemMapFs(),
			DownloadDir: "/downloads",
		})

		cmd := &CommandDownload{downloadInputs{ID: "missing", Format: "png", Filename: "diagram"}}

		_, ui := mock.NewUI()

		err := cmd.Handler(profile, ui, cli.Clients{Diagram: client, Session: store})
		assert.Equal(t, errors.New("failed to download diagram in format png: diagram not found"), err)

		var serverErr diagram.ServerError
		assert.True(t, errors.As(err, &serverErr), "expected the server error to be reachable")
		assert.Equal(t, http.StatusNotFound, serverErr.StatusCode)
	})

	t.Run("should save the payload through the diagram client", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			io.WriteString(w, "PNGDATA")
		}))
		defer server.Close()

		profile := mock.NewProfileWithSession(t, "T1", session.User{ID: "u1", Email: "a@b.com"})
		store := profile.Session()
		fs := afero.NewMemMapFs()

		client := diagram.NewClient(diagram.Config{
			BaseURL:     server.URL,
			Session:     store,
			Fs:          fs,
			DownloadDir: "/downloads",
		})

		cmd := &CommandDownload{downloadInputs{ID: "d1", Format: "PNG", Filename: "arch", Dir: "exports"}}

		out, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{Diagram: client, Session: store, Fs: fs}))
		assert.Equal(t, "Successfully downloaded diagram to /downloads/exports/arch.png\n", out.String())

		data, err := afero.ReadFile(fs, "/downloads/exports/arch.png")
		assert.Nil(t, err)
		assert.Equal(t, "PNGDATA", string(data))
	})

	t.Run("should save the payload into an absolute directory", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/svg+xml")
			io.WriteString(w, "<svg/>")
		}))
		defer server.Close()

		profile := mock.NewProfileWithSession(t, "T1", session.User{ID: "u1", Email: "a@b.com"})
		store := profile.Session()
		fs := afero.NewMemMapFs()

		client := diagram.NewClient(diagram.Config{
			BaseURL:     server.URL,
			Session:     store,
			Fs:          fs,
			DownloadDir: "/work",
		})

		cmd := &CommandDownload{downloadInputs{ID: "d1", Format: "svg", Filename: "arch", Dir: "/exports"}}

		out, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{Diagram: client, Session: store, Fs: fs}))
		assert.Equal(t, "Successfully downloaded diagram to /exports/arch.svg\n", out.String())

		data, err := afero.ReadFile(fs, "/exports/arch.svg")
		assert.Nil(t, err)
		assert.Equal(t, "<svg/>", string(data))

		exists, _ := afero.Exists(fs, "/work/exports/arch.svg")
		assert.False(t, exists, "expected nothing under the working directory")
	})

	t.Run("should not wrap errors raised before the download", func(t *testing.T) {
		profile := mock.NewProfile(t)

		diagramClient := mock.DiagramClient{}
		diagramClient.DownloadDiagramFn = func(id, format, filename string) (string, error) {
			return "", diagram.ErrUnauthenticated{Action: "download"}
		}

		cmd := &CommandDownload{downloadInputs{ID: "d1", Format: "png", Filename: "diagram"}}

		_, ui := mock.NewUI()

		err := cmd.Handler(profile, ui, cli.Clients{Diagram: diagramClient})
		assert.Equal(t, diagram.ErrUnauthenticated{Action: "download"}, err)
	})
}

func TestDownloadInputs(t *testing.T) {
	t.Run("should default the format", func(t *testing.T) {
		i := downloadInputs{ID: "d1"}

		assert.Nil(t, i.Resolve(mock.NewProfile(t), nil))
		assert.Equal(t, downloadInputs{ID: "d1", Format: "png"}, i)
	})

	t.Run("should prompt for the diagram id", func(t *testing.T) {
		console, ui := mock.NewConsole(t)

		doneCh := make(chan (struct{}))
		go func() {
			defer close(doneCh)
			expectAndSend(console, "Diagram ID", "d1")
			console.ExpectEOF()
		}()

		i := downloadInputs{Format: "png", Filename: "diagram"}
		assert.Nil(t, i.Resolve(mock.NewProfile(t), ui))

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Equal(t, downloadInputs{ID: "d1", Format: "png", Filename: "diagram"}, i)
	})
}
