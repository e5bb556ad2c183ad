package models

type Position struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"type:varchar(255);not null" json:"title"`
	InterviewFlowID int    `gorm:"not null;index" json:"interviewFlowId"`

	// Relations
	InterviewFlow InterviewFlow `gorm:"foreignKey:InterviewFlowID" json:"-"`
}

func (Position) TableName() string {
	return "positions"
}
