// Package document assembles complete HTML documents from parsed JSON data:
// four-page character sheets and data-driven magic item cards. Both share the
// same HTML shell, web font links, and inlined stylesheet handling.
package document

import (
	"fmt"

	"github.com/fennwick/sheetsmith/pkg/content"
	"github.com/fennwick/sheetsmith/pkg/content/character"
)

// Document is a renderable document of any kind.
type Document interface {
	// BuildHTML renders the complete standalone HTML document.
	BuildHTML() (string, error)
}

// fontsLink loads the two display fonts used by the print stylesheets.
const fontsLink = `<link href="https://fonts.googleapis.com/css2?family=Cinzel:wght@400;500;600;700&family=Scada:wght@400;700&display=swap" rel="stylesheet">`

// wrap produces the standalone HTML shell with the stylesheet inlined.
func wrap(title, css, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    %s
    <style>
%s
    </style>
</head>
<body>%s
</body>
</html>`, title, fontsLink, css, body)
}

// newRegistry builds a registry with both the base and the character
// renderers installed.
func newRegistry() *content.Registry {
	reg := content.NewRegistry()
	character.Register(reg)
	return reg
}
