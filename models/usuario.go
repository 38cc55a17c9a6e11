package models

import "time"

// Usuario represents the usuarios table used for login. Password holds a
// bcrypt hash and is never serialized.
type Usuario struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"column:username;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password" json:"-"`
	Nombre    *string   `gorm:"column:nombre" json:"nombre"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the table name for Usuario
func (Usuario) TableName() string {
	return "usuarios"
}
