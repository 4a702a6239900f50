package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Content-package validation errors
var (
	ErrContentPackageIDEmpty    = errors.New("content package ID cannot be empty")
	ErrContentPackageTitleEmpty = errors.New("content package title cannot be empty")
	ErrContentPackageNoWords    = errors.New("content package must carry at least one extracted word")
)

// ContentPackage is a piece of imported study material (an article, a
// transcript, a story) reduced to its extracted word list. Packages feed
// the content dimension of the unified score: a package counts as
// consumable once enough of its words are known.
type ContentPackage struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source,omitempty"`
	Words     []string  `json:"words"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContentPackage creates a package from a title and the lemmas
// extracted from its text. Words are lowercased and deduplicated,
// preserving first-seen order.
func NewContentPackage(title, source string, words []string) (*ContentPackage, error) {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		unique = append(unique, w)
	}

	pkg := &ContentPackage{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Source:    source,
		Words:     unique,
		CreatedAt: time.Now().UTC(),
	}

	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Validate checks if the ContentPackage has valid data.
func (p *ContentPackage) Validate() error {
	if p.ID == uuid.Nil {
		return ErrContentPackageIDEmpty
	}

	if p.Title == "" {
		return ErrContentPackageTitleEmpty
	}

	if len(p.Words) == 0 {
		return ErrContentPackageNoWords
	}

	return nil
}
