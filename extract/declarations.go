package extract

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Declaration is one translatable string declared inline in VM source via
// the formatMessage call pattern:
//
//	formatMessage({
//	    id: 'ob.blocks.motion',
//	    default: 'Motion',
//	    description: 'Name of the motion block category'
//	})
//
// The grammar is narrow: single-quoted field:value pairs inside one brace
// block. All three fields are required; a matched call missing one is a
// source contract violation and fails extraction.
type Declaration struct {
	ID          string
	Default     string
	Description string
}

var (
	declarationBlock = regexp.MustCompile(`formatMessage\(\s*\{([^}]*)\}`)
	declarationField = regexp.MustCompile(`(\w+)\s*:\s*'((?:[^'\\]|\\.)*)'`)
)

// ScanDeclarationFile parses every formatMessage declaration in the file.
func ScanDeclarationFile(path string) ([]Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	decls, err := ParseDeclarations(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decls, nil
}

// ParseDeclarations extracts all declarations from source text.
func ParseDeclarations(src string) ([]Declaration, error) {
	var decls []Declaration

	for _, loc := range declarationBlock.FindAllStringSubmatchIndex(src, -1) {
		block := src[loc[2]:loc[3]]
		line := 1 + strings.Count(src[:loc[0]], "\n")

		fields := make(map[string]string)
		for _, m := range declarationField.FindAllStringSubmatch(block, -1) {
			fields[m[1]] = unescape(m[2])
		}

		decl := Declaration{
			ID:          fields["id"],
			Default:     fields["default"],
			Description: fields["description"],
		}
		for _, required := range []string{"id", "default", "description"} {
			if _, ok := fields[required]; !ok {
				return nil, fmt.Errorf("line %d: declaration missing %q field", line, required)
			}
		}
		decls = append(decls, decl)
	}

	return decls, nil
}

// unescape resolves the escape sequences the grammar admits inside
// single-quoted values.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
