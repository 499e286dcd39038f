package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Category struct {
	ID        gocql.UUID `json:"id,omitempty" db:"category_id"`
	Name      string     `json:"name" db:"name"`
	Slug      string     `json:"slug" db:"slug"`
	ImageURL  string     `json:"image_url,omitempty" db:"image_url"`
	CreatedAt *time.Time `json:"created_at,omitempty" db:"created_at"`
}
