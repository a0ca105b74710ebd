package entity

// ServiceType represents a bookable clinic service (e.g. general checkup, immunization)
type ServiceType struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	IsActive    *bool  `gorm:"not null;default:true;index" json:"is_active"`
}

func (ServiceType) TableName() string {
	return "service_types"
}
