package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored account record. CartData maps item ids (string
// keys) to quantities; keys that were never touched simply do not
// exist and read as zero.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	CartData     map[string]int     `json:"cartData" bson:"cartData"`
	Date         time.Time          `json:"date" bson:"date"`
}
