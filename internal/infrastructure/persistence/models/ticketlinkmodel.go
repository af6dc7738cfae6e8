package models

type TicketLinkModel struct {
	ID                uint   `gorm:"primaryKey"`
	AlertID           string `gorm:"uniqueIndex;size:64;not null"`
	TicketID          int    `gorm:"not null;index"`
	TicketStatus      string `gorm:"size:100"`
	TicketClosed      bool   `gorm:"not null;default:false"`
	TicketClosedFlag  bool   `gorm:"not null;default:false"`
	TicketStatusError bool   `gorm:"not null;default:false"`
	NeedsSync         bool   `gorm:"not null;default:false;index"`
	CheckedAt         *int64 `gorm:""`
	ClosedAt          *int64 `gorm:"index"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketLinkModel) TableName() string {
	return "ticket_links"
}
