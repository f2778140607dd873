package models

import "time"

type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// ItemRecord is a row of the items table, including bookkeeping columns that
// stay off the wire.
type ItemRecord struct {
	Item
	CreatedAt time.Time
	UpdatedAt time.Time
}
