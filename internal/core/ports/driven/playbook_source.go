package driven

import "github.com/anirvinkotaru/techassist/internal/core/domain"

// PlaybookSource supplies the fixed playbook table.
// It is read once when the catalog is built.
type PlaybookSource interface {
	Load() ([]domain.PlaybookDocument, error)
}
