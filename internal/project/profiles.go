package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/DowelMap/internal/model"
)

// DefaultProfilesDir returns the default directory for storing custom profiles.
func DefaultProfilesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "dowelmap"), nil
}

// DefaultProfilesPath returns the default file path for custom profiles.
func DefaultProfilesPath() (string, error) {
	dir, err := DefaultProfilesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.json"), nil
}

// SaveCustomProfiles saves custom profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.GCodeProfile) error {
	return writeJSON(path, profiles)
}

// LoadCustomProfiles loads custom profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.GCodeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.GCodeProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.GCodeProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	// A custom profile may not shadow a built-in one.
	kept := profiles[:0]
	for _, p := range profiles {
		if p.Name == "" || isBuiltIn(p.Name) {
			continue
		}
		p.IsBuiltIn = false
		kept = append(kept, p)
	}
	return kept, nil
}

func isBuiltIn(name string) bool {
	for _, p := range model.GCodeProfiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// InstallCustomProfiles loads the profiles at path and registers them so
// that model.GetProfile finds them. It returns the number installed.
func InstallCustomProfiles(path string) (int, error) {
	profiles, err := LoadCustomProfiles(path)
	if err != nil {
		return 0, err
	}
	for _, p := range profiles {
		if err := model.AddCustomProfile(p); err != nil {
			return 0, err
		}
	}
	return len(profiles), nil
}

// SaveCustomProfilesToDefault saves custom profiles to the default path.
func SaveCustomProfilesToDefault(profiles []model.GCodeProfile) error {
	path, err := DefaultProfilesPath()
	if err != nil {
		return err
	}
	return SaveCustomProfiles(path, profiles)
}

// LoadCustomProfilesFromDefault loads custom profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.GCodeProfile, error) {
	path, err := DefaultProfilesPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomProfiles(path)
}

// ExportProfile exports a single profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.GCodeProfile) error {
	profile.IsBuiltIn = false
	return writeJSON(path, profile)
}

// ImportProfile imports a single profile from a JSON file.
func ImportProfile(path string) (model.GCodeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.GCodeProfile{}, err
	}

	var profile model.GCodeProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.GCodeProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.GCodeProfile{}, errors.New("imported profile has no name")
	}
	if isBuiltIn(profile.Name) {
		return model.GCodeProfile{}, fmt.Errorf("imported profile %q shadows a built-in profile", profile.Name)
	}
	return profile, nil
}
