package item

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// Fold returns the case-folded form of s used for every name comparison.
// cases.Caser is stateful, so a fresh one is built per call.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// NameMatches reports whether query is a case-insensitive substring of name
func NameMatches(name, query string) bool {
	q := Fold(query)
	return q != "" && strings.Contains(Fold(name), q)
}

// MatchEntry finds the inventory stack a free-text query refers to. An exact
// case-insensitive match on name or item id wins; otherwise the first stack
// whose name contains the query. Returns -1 when nothing matches.
func MatchEntry(inventory []domain.InventoryEntry, query string) int {
	q := Fold(query)
	if q == "" {
		return -1
	}

	for i := range inventory {
		if Fold(inventory[i].Name) == q || Fold(inventory[i].ItemID) == q {
			return i
		}
	}
	for i := range inventory {
		if strings.Contains(Fold(inventory[i].Name), q) {
			return i
		}
	}
	return -1
}
