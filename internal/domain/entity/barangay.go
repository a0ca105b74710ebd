package entity

// Barangay represents a barangay served by a barangay health station
type Barangay struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	IsActive *bool  `gorm:"not null;default:true" json:"is_active"`
}

func (Barangay) TableName() string {
	return "barangays"
}
