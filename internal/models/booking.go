package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:254;index;not null" json:"email"`
	Phone string `gorm:"size:32;not null" json:"phone"`

	Date      string `gorm:"size:10;index;not null" json:"date"`
	Time      string `gorm:"size:5;not null" json:"time"`
	PartySize int    `gorm:"not null" json:"partySize"`
	Occasion  string `gorm:"size:100" json:"occasion,omitempty"`
	Notes     string `gorm:"size:500" json:"notes,omitempty"`

	Status   string `gorm:"size:20;default:'pending'" json:"status"`
	ClientIP string `gorm:"size:64" json:"-"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
