package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a row in the hosted users table. The table name is chosen at
// startup, so queries go through db.Table rather than a TableName method.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
