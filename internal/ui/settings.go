package ui

import (
	"encoding/json"
	"os"
)

// Settings is the optional on-disk configuration. A missing settings
// file is not an error; every field has a working default.
type Settings struct {
	StartDir string `json:"start_dir"`
	LogFile  string `json:"log_file"`
}

func DefaultSettings() Settings {
	return Settings{StartDir: ".", LogFile: "kernelchunk.log"}
}

// LoadSettings reads kernelchunk.json from the working directory,
// falling back to defaults when the file does not exist.
func LoadSettings() (Settings, error) {
	set := DefaultSettings()

	data, err := os.ReadFile("kernelchunk.json")
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return set, err
	}

	if err := json.Unmarshal(data, &set); err != nil {
		return DefaultSettings(), err
	}
	if set.StartDir == "" {
		set.StartDir = "."
	}
	if set.LogFile == "" {
		set.LogFile = "kernelchunk.log"
	}
	return set, nil
}
