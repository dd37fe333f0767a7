package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openblocks-dev/txsync/transifex"
)

// Descriptor is one entry of a GUI translation descriptor file: an ordered
// JSON array of these objects.
type Descriptor struct {
	ID             string `json:"id"`
	DefaultMessage string `json:"defaultMessage"`
	Description    string `json:"description"`
}

// skipDirs contains directory names ignored during the descriptor walk.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

// ScanDescriptors recursively reads every .json file under dir. It returns
// the namespaced entries as source messages and the complete id list (all
// namespaces) for the audit artifact.
func ScanDescriptors(dir string) (map[string]transifex.Message, []string, error) {
	messages := make(map[string]transifex.Message)
	var allIDs []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}

		entries, err := readDescriptorFile(path)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := validate(entry.ID, entry.DefaultMessage, path); err != nil {
				return err
			}
			allIDs = append(allIDs, entry.ID)
			if !strings.HasPrefix(entry.ID, IDPrefix) {
				continue
			}
			messages[entry.ID] = transifex.Message{
				String:           entry.DefaultMessage,
				DeveloperComment: entry.Description,
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	return messages, allIDs, nil
}

func readDescriptorFile(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var entries []Descriptor
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}
