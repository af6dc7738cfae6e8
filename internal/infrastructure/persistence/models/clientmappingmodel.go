package models

type ClientMappingModel struct {
	ID              uint   `gorm:"primaryKey"`
	SlideClientID   string `gorm:"uniqueIndex;size:64;not null"`
	SlideClientName string `gorm:"size:200;not null"`
	ConnectWiseID   int    `gorm:"not null;index"`
	ConnectWiseName string `gorm:"size:200;not null"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ClientMappingModel) TableName() string {
	return "client_mappings"
}
