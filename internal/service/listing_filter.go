package service

import (
	"strings"

	"github.com/seekwell/jobboard/internal/domain/model"
)

// FilterListings returns the listings whose title or external post id
// contains query as a case-insensitive substring. An empty query matches
// everything; input order is preserved. There is no tokenization or ranking.
func FilterListings(listings []*model.Listing, query string) []*model.Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return listings
	}

	matched := make([]*model.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), query) ||
			strings.Contains(strings.ToLower(l.ExternalPostID), query) {
			matched = append(matched, l)
		}
	}
	return matched
}
