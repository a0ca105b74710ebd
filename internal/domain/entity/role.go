package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDPatient       = 1
	RoleIDRHUAdmin      = 2
	RoleIDBHSAdmin      = 3
	RoleIDPharmacyAdmin = 4
	RoleIDSuperAdmin    = 5
)

// RoleNames constants
const (
	RolePatient       = "patient"
	RoleRHUAdmin      = "rhu_admin"
	RoleBHSAdmin      = "bhs_admin"
	RolePharmacyAdmin = "pharmacy_admin"
	RoleSuperAdmin    = "super_admin"
)
