package utils

import "strings"

// NormalizeQuery lower-cases and trims a search term.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// MatchesItem reports whether name or type contains the already normalized
// query. An empty query matches everything.
func MatchesItem(name, itemType, normalized string) bool {
	if normalized == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), normalized) ||
		strings.Contains(strings.ToLower(itemType), normalized)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an (I)LIKE pattern that matches q as a literal
// substring.
func ContainsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
