package kanban

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"legal-board-api/internal/domain"
)

// Criteria are the three optional board filters. A zero field matches everything.
type Criteria struct {
	Search        string
	ResponsableID *uuid.UUID
	Date          string // YYYY-MM-DD
}

// IsZero reports whether no filter is active
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.ResponsableID == nil && c.Date == ""
}

// Equal compares two criteria by value
func (c Criteria) Equal(o Criteria) bool {
	if c.Search != o.Search || c.Date != o.Date {
		return false
	}
	if c.ResponsableID == nil || o.ResponsableID == nil {
		return c.ResponsableID == nil && o.ResponsableID == nil
	}
	return *c.ResponsableID == *o.ResponsableID
}

// Validate rejects a date filter that is not a calendar date
func (c Criteria) Validate() error {
	if c.Date == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, c.Date); err != nil {
		return domain.NewValidationError("fecha", "La fecha debe tener el formato AAAA-MM-DD")
	}
	return nil
}

// Filter returns the items satisfying every active predicate, in input order
func Filter[T Item](items []T, c Criteria) []T {
	folder := cases.Fold()
	needle := folder.String(c.Search)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if matches(it, c, needle, folder) {
			out = append(out, it)
		}
	}
	return out
}

// Matches applies the criteria to a single item
func Matches(it Item, c Criteria) bool {
	folder := cases.Fold()
	return matches(it, c, folder.String(c.Search), folder)
}

func matches(it Item, c Criteria, needle string, folder cases.Caser) bool {
	if needle != "" && !strings.Contains(folder.String(it.SearchText()), needle) {
		return false
	}
	if c.ResponsableID != nil {
		r := it.Responsible()
		if r == nil || *r != *c.ResponsableID {
			return false
		}
	}
	if c.Date != "" {
		d := it.FilterDate()
		if d == nil || d.IsZero() || DateKey(*d) != c.Date {
			return false
		}
	}
	return true
}

// DateKey is the UTC calendar date of t as YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}
