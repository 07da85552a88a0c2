// Package playbooks provides the built-in playbook documents.
//
// Each document is a YAML file under data/, embedded at compile time.
package playbooks

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Ensure Source implements the interface.
var _ driven.PlaybookSource = (*Source)(nil)

// Source reads playbook documents from a filesystem of YAML files.
type Source struct {
	fsys fs.FS
	dir  string
}

// NewEmbeddedSource returns a source over the compiled-in playbooks.
func NewEmbeddedSource() *Source {
	return &Source{fsys: dataFS, dir: "data"}
}

// NewSource returns a source over the *.yaml files in dir of fsys.
func NewSource(fsys fs.FS, dir string) *Source {
	return &Source{fsys: fsys, dir: dir}
}

// Load parses every YAML file in the source directory, in file name order.
func (s *Source) Load() ([]domain.PlaybookDocument, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading playbook directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]domain.PlaybookDocument, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading playbook %s: %w", name, err)
		}

		var doc domain.PlaybookDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing playbook %s: %w", name, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
