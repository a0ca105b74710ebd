package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID              int        `gorm:"not null;index" json:"role_id"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"type:text;not null" json:"-"`
	FullName            string     `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive            *bool      `gorm:"not null;default:true;index" json:"is_active"`
	FailedLoginAttempts int        `gorm:"not null;default:0" json:"-"`
	LockedUntil         *time.Time `gorm:"index" json:"-"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsLocked reports whether the account is currently locked out.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// RegisterFailedLogin records one failed login attempt. Reaching maxAttempts
// locks the account until now+lockout and resets the counter; the return
// value reports whether this attempt triggered the lock.
func (u *User) RegisterFailedLogin(now time.Time, maxAttempts int, lockout time.Duration) bool {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockedUntil := now.Add(lockout)
		u.LockedUntil = &lockedUntil
		u.FailedLoginAttempts = 0
		return true
	}
	return false
}

// ResetLoginAttempts clears the failure counter and lockout stamp after a
// successful login.
func (u *User) ResetLoginAttempts() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
}

// IsPatient reports whether the user holds the patient role.
func (u *User) IsPatient() bool {
	return u.Role.RoleName == RolePatient
}
