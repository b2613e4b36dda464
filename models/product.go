package models

import "time"

// Product is a catalog entry. ID is assigned from the counter
// sequence, not by the store.
type Product struct {
	ID        int64     `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Image     string    `json:"image" bson:"image"`
	Category  string    `json:"category" bson:"category"`
	NewPrice  float64   `json:"new_price" bson:"new_price"`
	OldPrice  float64   `json:"old_price" bson:"old_price"`
	Available bool      `json:"available" bson:"available"`
	Date      time.Time `json:"date" bson:"date"`
}
