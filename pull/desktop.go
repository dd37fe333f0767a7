package pull

import (
	"context"
	"path/filepath"
)

// Desktop resources: the application strings and the project web page
// served from the checkout's docs directory.
const (
	ResourceDesktop    = "desktop-strings"
	ResourceDesktopWeb = "desktop-web-strings"

	desktopThreshold = 0.5
)

// SyncDesktop pulls the desktop application strings into a combined JSON
// file and patches the web page's inline translation script with a compact
// serialization of the web strings.
func SyncDesktop(ctx context.Context, p *Puller, dir string) error {
	app, err := p.Pull(ctx, ResourceDesktop, desktopThreshold)
	if err != nil {
		return err
	}
	appPath := filepath.Join(dir, "src", "l10n", "translations.json")
	if err := writeTreeFile(appPath, combined(app)); err != nil {
		return err
	}
	p.log("wrote %s", appPath)

	web, err := p.Pull(ctx, ResourceDesktopWeb, desktopThreshold)
	if err != nil {
		return err
	}
	compact, err := combined(web).MarshalCompact()
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(dir, "docs", "index.html")
	if err := PatchFile(htmlPath, Marker, "const translations = "+string(compact)+";"); err != nil {
		return err
	}
	p.log("patched %s", htmlPath)

	return nil
}
