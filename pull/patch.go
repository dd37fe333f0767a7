package pull

import (
	"fmt"
	"os"
	"strings"
)

// Marker delimits the generated region inside manifest and HTML files that
// the pull rewrites in place. The file must contain exactly one pair.
const Marker = "/*===*/"

// ReplaceBetween replaces the span between the two marker occurrences in
// content with replacement, preserving both markers verbatim. It fails when
// the content does not contain exactly one marker-delimited region, which
// means the target file's format has drifted.
func ReplaceBetween(content, marker, replacement string) (string, error) {
	parts := strings.Split(content, marker)
	if len(parts) != 3 {
		return "", fmt.Errorf("expected exactly one region delimited by %q, found %d marker(s)", marker, len(parts)-1)
	}
	return parts[0] + marker + replacement + marker + parts[2], nil
}

// PatchFile rewrites the marker-delimited region of the file at path.
func PatchFile(path, marker, replacement string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	patched, err := ReplaceBetween(string(data), marker, replacement)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
