// Package service holds the non-UI workflows layered on the store:
// fuzzy client lookup and CSV ledger exchange.
package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/avtomaster/workshop/internal/store"
)

// ClientSearch finds clients by approximate name or phone so the
// front desk can pull up a record from a half-remembered spelling.
type ClientSearch struct {
	Store *store.Store
}

// Match is one search hit with its similarity score in [0,1].
type Match struct {
	Client store.Client
	Score  float64
}

// maxDistanceRatio bounds how different a query may be from a name
// before it stops counting as a match.
const maxDistanceRatio = 0.4

// Find returns clients matching the query, best first. An empty query
// returns every client in registry order with score 1.
func (cs *ClientSearch) Find(query string) []Match {
	q := normalize(query)
	clients := cs.Store.Clients()
	if q == "" {
		out := make([]Match, 0, len(clients))
		for _, c := range clients {
			out = append(out, Match{Client: c, Score: 1})
		}
		return out
	}

	var out []Match
	for _, c := range clients {
		score := bestScore(q, c)
		if score <= 0 {
			continue
		}
		out = append(out, Match{Client: c, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// bestScore stages the match the cheap way first: substring hits on
// name or phone count as exact, then levenshtein decides.
func bestScore(q string, c store.Client) float64 {
	name := normalize(c.Name)
	if strings.Contains(name, q) {
		return 1
	}
	if digits := normalizePhone(q); digits != "" && strings.Contains(normalizePhone(c.Phone), digits) {
		return 1
	}
	return similarity(q, name)
}

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxlen := len(a)
	if len(b) > maxlen {
		maxlen = len(b)
	}
	ratio := float64(dist) / float64(maxlen)
	if ratio >= maxDistanceRatio {
		return 0
	}
	return 1 - ratio
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
