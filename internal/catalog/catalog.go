package catalog

import (
	"errors"
	"strings"

	"cybertcm/internal/domain"
)

// ErrCatalogUnavailable signals that no catalog has been published yet.
// Scoring must never proceed with an empty dimension set.
var ErrCatalogUnavailable = errors.New("question catalog unavailable")

// Eightfold holds the 28-item instrument-A catalog plus the narrative table.
type Eightfold struct {
	Questions []domain.QuestionItem
	Types     []domain.TypeProfile

	typeIndex map[string]int
}

// NewEightfold builds the catalog and indexes the narrative table by
// trimmed type code. Later duplicate codes are ignored.
func NewEightfold(questions []domain.QuestionItem, types []domain.TypeProfile) Eightfold {
	idx := make(map[string]int, len(types))
	for i, tp := range types {
		code := strings.TrimSpace(tp.Code)
		if code == "" {
			continue
		}
		if _, ok := idx[code]; !ok {
			idx[code] = i
		}
	}
	return Eightfold{Questions: questions, Types: types, typeIndex: idx}
}

// TypeByCode looks up a narrative row by exact type code.
func (c *Eightfold) TypeByCode(code string) (domain.TypeProfile, bool) {
	i, ok := c.typeIndex[strings.TrimSpace(code)]
	if !ok {
		return domain.TypeProfile{}, false
	}
	return c.Types[i], true
}

// FirstType returns the first narrative row, used as the base for fallback
// synthesis when a code is not catalogued.
func (c *Eightfold) FirstType() (domain.TypeProfile, bool) {
	if len(c.Types) == 0 {
		return domain.TypeProfile{}, false
	}
	return c.Types[0], true
}

// Ninefold holds the 33-item instrument-B catalog.
type Ninefold struct {
	Questions []domain.QuestionItem
}

// HasQuestion reports whether the catalog contains the given question id.
func (c *Ninefold) HasQuestion(id int) bool {
	for _, q := range c.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// Bundle is one consistent, fully-loaded snapshot of both catalogs.
// Published snapshots are treated as read-only.
type Bundle struct {
	Eightfold Eightfold
	Ninefold  Ninefold
}
