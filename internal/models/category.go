package models

import "time"

type Category struct {
	ID        string    `bson:"_id,omitempty" json:"category_id"`
	Name      string    `bson:"name" json:"name"`
	IsUse     string    `bson:"is_use" json:"is_use"`
	CreatedAt time.Time `bson:"created_at" json:"create_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"update_at"`
}
