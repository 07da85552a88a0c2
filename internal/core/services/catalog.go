package services

import (
	"fmt"
	"sort"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driving.PlaybookCatalog = (*Catalog)(nil)

// Catalog is the immutable playbook table. It is built once and never
// modified, so it is safe for concurrent use without locking.
type Catalog struct {
	byID map[string]domain.PlaybookDocument
	ids  []string
}

// NewCatalog builds a catalog from the source's documents.
// Fails on empty or duplicate IDs and on non-positive estimated minutes.
func NewCatalog(source driven.PlaybookSource) (*Catalog, error) {
	docs, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("loading playbooks: %w", err)
	}

	c := &Catalog{
		byID: make(map[string]domain.PlaybookDocument, len(docs)),
		ids:  make([]string, 0, len(docs)),
	}

	for i := range docs {
		doc := docs[i]
		if doc.ID == "" {
			return nil, fmt.Errorf("playbook %d has no id: %w", i, domain.ErrInvalidInput)
		}
		if _, exists := c.byID[doc.ID]; exists {
			return nil, fmt.Errorf("playbook %q: %w", doc.ID, domain.ErrAlreadyExists)
		}
		if doc.EstimatedMinutes <= 0 {
			return nil, fmt.Errorf("playbook %q estimated minutes must be positive: %w", doc.ID, domain.ErrInvalidInput)
		}
		c.byID[doc.ID] = doc.Clone()
		c.ids = append(c.ids, doc.ID)
	}
	sort.Strings(c.ids)

	logger.Debug("Playbook catalog loaded with %d documents", len(c.ids))
	return c, nil
}

// Lookup returns a copy of the playbook for id, or nil if id is empty or unknown.
func (c *Catalog) Lookup(id string) *domain.PlaybookDocument {
	if id == "" {
		return nil
	}
	doc, ok := c.byID[id]
	if !ok {
		return nil
	}
	clone := doc.Clone()
	return &clone
}

// List returns copies of all playbooks ordered by ID.
func (c *Catalog) List() []domain.PlaybookDocument {
	result := make([]domain.PlaybookDocument, 0, len(c.ids))
	for _, id := range c.ids {
		result = append(result, c.byID[id].Clone())
	}
	return result
}

// Len returns the number of playbooks.
func (c *Catalog) Len() int {
	return len(c.ids)
}
