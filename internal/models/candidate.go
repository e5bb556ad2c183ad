package models

import "time"

type Candidate struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// FullName joins first and last name with a single space.
func (c Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}
