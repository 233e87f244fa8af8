// Package settings loads the per-run reconciliation settings. Two optional
// JSON files are consulted in the working directory: a global settings.json
// and a per-original-dataset override named after the original file (e.g.
// export.csv.json). The override wins key by key, which lets one directory
// hold defaults for many datasets plus dataset-specific synonym groups.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/crosscheckhq/crosscheck/pkg/errors"
	"github.com/crosscheckhq/crosscheck/pkg/reconcile"
)

// GlobalFile is the name of the shared settings file.
const GlobalFile = "settings.json"

// Settings holds the recognized reconciliation options. Key names are the
// tool's long-standing wire contract.
type Settings struct {
	// WhitelistColumns restricts comparison to these columns; empty means
	// no filtering.
	WhitelistColumns []string `json:"WHITELIST_COLUMNS"`

	// ExpectedHeaderDifferences lists groups of interchangeable column
	// names used to build the synonym map.
	ExpectedHeaderDifferences reconcile.SynonymGroups `json:"EXPECTED_HEADER_DIFFERENCES_RAW"`
}

// HasWhitelist reports whether a column whitelist was configured.
func (s *Settings) HasWhitelist() bool {
	return len(s.WhitelistColumns) > 0
}

// Load reads the settings for a run. dir is the directory holding the
// settings files, originalName the basename of the original dataset file.
// Missing files are fine; malformed JSON is a ConfigError naming the file.
func Load(dir, originalName string) (*Settings, error) {
	merged := make(map[string]json.RawMessage)

	files := []string{GlobalFile}
	if originalName != "" {
		files = append(files, originalName+".json")
	}

	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.WrapIO("read", filepath.Join(dir, file), err)
		}

		var keys map[string]json.RawMessage
		if err := json.Unmarshal(data, &keys); err != nil {
			return nil, errors.NewConfigError(file,
				"exists, but contains invalid JSON; remove the file or fix it before running again", err)
		}
		for k, v := range keys {
			merged[k] = v
		}
	}

	settings := &Settings{}
	for key, raw := range merged {
		var err error
		switch key {
		case "WHITELIST_COLUMNS":
			err = json.Unmarshal(raw, &settings.WhitelistColumns)
		case "EXPECTED_HEADER_DIFFERENCES_RAW":
			err = json.Unmarshal(raw, &settings.ExpectedHeaderDifferences)
		default:
			// Unrecognized keys are ignored.
		}
		if err != nil {
			return nil, errors.NewConfigError(key, "has an unexpected value shape", err)
		}
	}

	return settings, nil
}
