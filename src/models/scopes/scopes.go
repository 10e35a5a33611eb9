package scopes

import (
	"time"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

// Upcoming keeps shows starting strictly after now.
func Upcoming(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("start_time > ?", now)
	}
}

// Past keeps shows starting strictly before now. A show without a start time
// has nowhere else to go, so it counts as past; that keeps past+upcoming
// covering every show.
func Past(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("start_time < ? OR start_time IS NULL", now)
	}
}
