package entity

import (
	"time"

	"github.com/google/uuid"
)

// Holiday marks a public holiday; a holiday night prices as a weekend night.
type Holiday struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Date time.Time `db:"holiday_date"`
}
