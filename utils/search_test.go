package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizeQuery(t *testing.T) {
	assert.Equal(t, "cruiser", NormalizeQuery("  Cruiser\t"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func Test_MatchesItem(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		itemType string
		query    string
		want     bool
	}{
		{"empty query matches", "Jawa Perak", "Bobber", "", true},
		{"type substring", "Yezdi Roadster", "Cruiser", "cruis", true},
		{"name substring", "Royal Enfield Classic 350", "Cruiser", "classic", true},
		{"mixed case item", "TVS Apache RR 310", "Sport", "apache", true},
		{"no match", "Hero Splendor Plus", "Commuter", "sport", false},
		{"substring not token", "Honda Hornet 2.0", "Classic", "net 2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesItem(tt.itemName, tt.itemType, tt.query))
		})
	}
}

func Test_ContainsPattern(t *testing.T) {
	assert.Equal(t, "%cruiser%", ContainsPattern("cruiser"))
	assert.Equal(t, `%100\%%`, ContainsPattern("100%"))
	assert.Equal(t, `%fz\_s%`, ContainsPattern("fz_s"))
}
