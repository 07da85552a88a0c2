package driving

import "github.com/anirvinkotaru/techassist/internal/core/domain"

// PlaybookCatalog provides read-only access to incident playbooks.
type PlaybookCatalog interface {
	// Lookup returns the playbook for id, or nil when id is empty or unknown.
	// It never fails.
	Lookup(id string) *domain.PlaybookDocument

	// List returns every playbook ordered by ID.
	List() []domain.PlaybookDocument
}
