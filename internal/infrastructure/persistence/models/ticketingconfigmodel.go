package models

// TicketingConfigModel is a singleton row, always stored with ID 1.
type TicketingConfigModel struct {
	ID              uint   `gorm:"primaryKey"`
	BoardID         int    `gorm:"not null"`
	BoardName       string `gorm:"size:200"`
	StatusID        int    `gorm:"not null"`
	StatusName      string `gorm:"size:200"`
	PriorityID      int    `gorm:"not null"`
	PriorityName    string `gorm:"size:200"`
	TypeID          int    `gorm:"not null"`
	TypeName        string `gorm:"size:200"`
	SummaryTemplate string `gorm:"type:text"`
	BodyTemplate    string `gorm:"type:text"`
	AutoAssignTech  bool   `gorm:"not null;default:false"`
	TechnicianID    *int   `gorm:""`
	TechnicianName  string `gorm:"size:200"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketingConfigModel) TableName() string {
	return "ticketing_configs"
}
