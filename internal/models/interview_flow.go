package models

// InterviewFlow is the ordered set of steps a position's applications move
// through. Order is informational only.
type InterviewFlow struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Description string `gorm:"type:text" json:"description"`

	// Relations
	Steps []InterviewStep `gorm:"foreignKey:InterviewFlowID" json:"steps,omitempty"`
}

func (InterviewFlow) TableName() string {
	return "interview_flows"
}

type InterviewStep struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	InterviewFlowID int    `gorm:"not null;index" json:"interviewFlowId"`
	Name            string `gorm:"type:varchar(100);not null" json:"name"`
	OrderIndex      int    `gorm:"not null;default:0" json:"orderIndex"`

	// Relations
	InterviewFlow InterviewFlow `gorm:"foreignKey:InterviewFlowID" json:"-"`
}

func (InterviewStep) TableName() string {
	return "interview_steps"
}
