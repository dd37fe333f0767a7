package pull

import (
	"context"
	"path/filepath"
)

// GUI resources. The editor strings inherit their completeness from the
// upstream editor project, so they ship at threshold 0; addon settings are
// translated directly and need half coverage to be useful.
const (
	ResourceEditor = "editor-messages"
	ResourceAddons = "addon-settings"

	editorThreshold = 0
	addonsThreshold = 0.5
)

// SyncGUI pulls the editor and addon-settings resources and writes them
// into the GUI checkout as combined per-locale JSON files.
func SyncGUI(ctx context.Context, p *Puller, dir string) error {
	editor, err := p.Pull(ctx, ResourceEditor, editorThreshold)
	if err != nil {
		return err
	}
	editorPath := filepath.Join(dir, "src", "lib", "l10n", "generated-translations.json")
	if err := writeTreeFile(editorPath, combined(editor)); err != nil {
		return err
	}
	p.log("wrote %s", editorPath)

	addons, err := p.Pull(ctx, ResourceAddons, addonsThreshold)
	if err != nil {
		return err
	}
	addonsPath := filepath.Join(dir, "src", "addons", "settings", "translations.json")
	if err := writeTreeFile(addonsPath, combined(addons)); err != nil {
		return err
	}
	p.log("wrote %s", addonsPath)

	return nil
}
