package user

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

const (
	profilesDir = ".config/diagram-cli"
)

// HomeDir returns the CLI home directory, where every profile is stored
func HomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, profilesDir), nil
}

// ProfileMeta contains the name and full filepath of a profile
type ProfileMeta struct {
	Name     string
	Filepath string
}

// Profiles returns a list of each profile meta containing name and filepath
func Profiles(fs afero.Fs) ([]ProfileMeta, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", dirErr)
	}

	dirEntryList, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get CLI profiles: %w", err)
	}

	profileMetas := make([]ProfileMeta, 0, len(dirEntryList))
	for _, v := range dirEntryList {
		if v.IsDir() || filepath.Ext(v.Name()) != "."+ProfileType {
			continue
		}
		profileMetas = append(profileMetas, ProfileMeta{
			Name:     strings.TrimSuffix(v.Name(), filepath.Ext(v.Name())),
			Filepath: filepath.Join(dir, v.Name()),
		})
	}

	return profileMetas, nil
}
