package models

import "gorm.io/datatypes"

type AlertModel struct {
	ID            string         `gorm:"primaryKey;size:64"`
	AlertType     string         `gorm:"size:100;not null;index"`
	ClientID      string         `gorm:"size:64;index"`
	ClientName    string         `gorm:"size:200"`
	DeviceID      string         `gorm:"size:64"`
	DeviceName    string         `gorm:"size:200"`
	AgentName     string         `gorm:"size:200"`
	AgentHostname string         `gorm:"size:200"`
	Message       string         `gorm:"type:text"`
	Timestamp     int64          `gorm:"not null;index"`
	Resolved      bool           `gorm:"not null;default:false;index"`
	TicketID      *int           `gorm:""`
	Fields        datatypes.JSON `gorm:""`
	CreatedAt     int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (AlertModel) TableName() string {
	return "alerts"
}
