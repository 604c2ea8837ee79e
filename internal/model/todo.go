package model

import "time"

// Todo represents a task item owned by exactly one user.
type Todo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:100;not null"`
	Priority    int       `json:"priority" gorm:"not null"`
	Complete    bool      `json:"complete" gorm:"default:false"`
	OwnerID     uint      `json:"owner_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
