package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/DowelMap/internal/model"
)

// SaveSettings writes engine settings to a JSON file.
func SaveSettings(path string, s model.Settings) error {
	return writeJSON(path, s)
}

// LoadSettings reads engine settings from a JSON file. Keys missing from
// the file keep their DefaultSettings value, so a settings file only needs
// to list what it changes.
func LoadSettings(path string) (model.Settings, error) {
	s := model.DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return model.DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}
