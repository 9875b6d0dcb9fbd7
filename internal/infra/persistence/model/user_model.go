package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The primary key is assigned by the
// database sequence; the unique index on username is the authoritative guard
// against duplicate registrations, with the service-level pre-check serving
// as a fast path.
//
// GORM's automatic timestamp tracking is disabled: created_at and updated_at
// are persisted exactly as supplied by the caller, so the deterministic epoch
// sentinel used in tests survives the round trip.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
