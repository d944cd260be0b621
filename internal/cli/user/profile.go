package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/utec/diagram-cli/internal/cloud/diagram"
	"github.com/utec/diagram-cli/internal/session"
	"github.com/utec/diagram-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "diagram"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagBaseURL      = "base-url"
	FlagBaseURLUsage = "specify the base diagram API server URL"
)

// set of supported CLI profile keys
const (
	keyBaseURL       = "base_url"
	keyTelemetryMode = "telemetry_mode"
)

// Profile is the CLI profile
type Profile struct {
	Flags
	Name string

	dir    string
	fs     afero.Fs
	config *viper.Viper
}

// Flags are the CLI profile flags
type Flags struct {
	BaseURL       string
	TelemetryMode telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	return NewProfileWithFs(name, afero.NewOsFs())
}

// NewProfileWithFs creates a new CLI profile backed by the provided filesystem
func NewProfileWithFs(name string, fs afero.Fs) (*Profile, error) {
	if name == "" {
		return nil, errors.New("failed to create CLI profile: name must not be blank")
	}

	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}

	config := viper.New()
	config.SetFs(fs)

	return &Profile{
		Name:   name,
		dir:    dir,
		fs:     fs,
		config: config,
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	p.config.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return p.config.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Get reads a stored session value, reporting whether it is present
func (p Profile) Get(key string) (string, bool) {
	value := p.GetString(key)
	return value, value != ""
}

// Set writes a session value and persists the CLI profile
func (p *Profile) Set(key, value string) error {
	return p.SetAll(map[string]string{key: value})
}

// SetAll writes the session values and persists the CLI profile once
// If the profile cannot be saved, the previous values are put back
func (p *Profile) SetAll(values map[string]string) error {
	previous := make(map[string]string, len(values))
	for key, value := range values {
		previous[key] = p.GetString(key)
		p.SetString(key, value)
	}

	if err := p.Save(); err != nil {
		for key, value := range previous {
			p.SetString(key, value)
		}
		return err
	}
	return nil
}

// Remove clears a session value and persists the CLI profile
func (p *Profile) Remove(key string) error {
	previous := p.GetString(key)
	p.Clear(key)

	if err := p.Save(); err != nil {
		p.SetString(key, previous)
		return err
	}
	return nil
}

// Session returns the session store backed by the CLI profile
func (p *Profile) Session() *session.Store {
	return session.NewStore(p)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	p.config.SetConfigName(p.Name)
	p.config.AddConfigPath(p.dir)
	p.config.SetConfigPermissions(0600)
	p.config.SetConfigType(ProfileType)

	p.config.SetEnvPrefix(envPrefix)
	p.config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	p.config.AutomaticEnv()

	if err := p.config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	p.config.SetConfigPermissions(0600)
	if err := p.config.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = p.TelemetryMode()
	}
	p.SetString(keyTelemetryMode, string(p.Flags.TelemetryMode))

	if p.Flags.BaseURL == "" {
		baseURL := p.BaseURL()
		if baseURL == "" {
			baseURL = diagram.DefaultBaseURL
		}
		p.Flags.BaseURL = baseURL
	}
	p.SetBaseURL(p.Flags.BaseURL)

	return p.Save()
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, ProfileType)
}

// TelemetryMode gets the CLI profile telemetry mode
func (p Profile) TelemetryMode() telemetry.Mode {
	return telemetry.Mode(p.GetString(keyTelemetryMode))
}

// BaseURL gets the CLI profile diagram API base url
func (p Profile) BaseURL() string {
	return p.GetString(keyBaseURL)
}

// SetBaseURL sets the CLI profile diagram API base url
func (p Profile) SetBaseURL(baseURL string) {
	p.SetString(keyBaseURL, baseURL)
}
