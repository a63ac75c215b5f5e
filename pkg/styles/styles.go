// Package styles provides the embedded print stylesheets and the loader that
// lets a styles directory on disk override them.
package styles

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/errors"
)

//go:embed sheet.css
var sheetCSS string

//go:embed item.css
var itemCSS string

// Embedded defaults keyed by stylesheet name.
var embedded = map[string]string{
	"sheet.css": sheetCSS,
	"item.css":  itemCSS,
}

// Sheet returns the embedded base stylesheet.
func Sheet() string { return sheetCSS }

// Item returns the embedded item stylesheet.
func Item() string { return itemCSS }

// Loader resolves stylesheets by name. A file in Dir wins over the embedded
// default of the same name. Dir may be empty, in which case only the
// embedded defaults are consulted.
type Loader struct {
	Dir string
}

// Load concatenates the required and optional stylesheets in order. A
// required sheet that resolves neither on disk nor embedded is an error;
// optional sheets that resolve nowhere are skipped.
func (l Loader) Load(required, optional []string) (string, error) {
	var parts []string
	for _, name := range required {
		css, ok := l.resolve(name)
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidStylesheet, "stylesheet %q not found", name)
		}
		parts = append(parts, css)
	}
	for _, name := range optional {
		if css, ok := l.resolve(name); ok {
			parts = append(parts, css)
		}
	}
	return strings.Join(parts, "\n"), nil
}

func (l Loader) resolve(name string) (string, bool) {
	if l.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(l.Dir, name)); err == nil {
			return string(data), true
		}
	}
	css, ok := embedded[name]
	return css, ok
}
