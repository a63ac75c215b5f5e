// Package source discovers and loads the JSON documents a build run works
// on. A document is classified by shape: a top-level "pages" list marks an
// item card, everything else is a character sheet.
package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
	"github.com/fennwick/sheetsmith/pkg/errors"
)

// Kind classifies a document.
type Kind string

const (
	KindCharacter Kind = "character"
	KindItem      Kind = "item"
)

// Doc is one discovered document.
type Doc struct {
	// Name is the file stem, used to address the document.
	Name string
	// Path is the absolute path of the JSON file.
	Path string
	// Kind is derived from the document shape on load.
	Kind Kind
	// Raw is the file content the data was decoded from.
	Raw []byte
	// Data is the decoded document.
	Data content.Block
}

// Classify determines the document kind from decoded data.
func Classify(data content.Block) Kind {
	if _, ok := data["pages"]; ok {
		return KindItem
	}
	return KindCharacter
}

// Load reads and decodes a single document file.
func Load(path string) (*Doc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to read %s", path)
	}

	var data content.Block
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "failed to parse %s", path)
	}

	return &Doc{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
		Kind: Classify(data),
		Raw:  raw,
		Data: data,
	}, nil
}

// Discover finds all JSON documents under dir, sorted by name. The files are
// not decoded; use Load for that.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "documents directory %s not found", dir)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to read %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Find resolves a document by name within dir. The name may be given with or
// without the .json extension.
func Find(dir, name string) (*Doc, error) {
	if err := errors.ValidateDocumentName(name); err != nil {
		return nil, err
	}
	name = strings.TrimSuffix(name, ".json")
	path := filepath.Join(dir, name+".json")
	doc, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return nil, errors.New(errors.ErrCodeDocumentNotFound, "no document named %q in %s", name, dir)
	}
	return doc, err
}
