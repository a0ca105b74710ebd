package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIsLocked(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&User{}).IsLocked(now))

	future := now.Add(10 * time.Minute)
	assert.True(t, (&User{LockedUntil: &future}).IsLocked(now))

	// The lock ends exactly at the stamp, not after it.
	assert.False(t, (&User{LockedUntil: &now}).IsLocked(now))

	past := now.Add(-time.Second)
	assert.False(t, (&User{LockedUntil: &past}).IsLocked(now))
}

func TestRegisterFailedLogin(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	user := &User{}

	// The first four failures only count up.
	for i := 1; i <= 4; i++ {
		locked := user.RegisterFailedLogin(now, 5, 30*time.Minute)
		assert.False(t, locked, "attempt %d should not lock", i)
		assert.Equal(t, i, user.FailedLoginAttempts)
		assert.Nil(t, user.LockedUntil)
	}

	// The fifth locks for the full window and resets the counter.
	locked := user.RegisterFailedLogin(now, 5, 30*time.Minute)
	assert.True(t, locked)
	require.NotNil(t, user.LockedUntil)
	assert.Equal(t, now.Add(30*time.Minute), *user.LockedUntil)
	assert.Equal(t, 0, user.FailedLoginAttempts)

	assert.True(t, user.IsLocked(now.Add(29*time.Minute)))
	assert.False(t, user.IsLocked(now.Add(30*time.Minute)))
}

func TestResetLoginAttempts(t *testing.T) {
	lockedUntil := time.Now().Add(time.Hour)
	user := &User{FailedLoginAttempts: 3, LockedUntil: &lockedUntil}

	user.ResetLoginAttempts()

	assert.Equal(t, 0, user.FailedLoginAttempts)
	assert.Nil(t, user.LockedUntil)
	assert.False(t, user.IsLocked(time.Now()))
}

func TestUserIsPatient(t *testing.T) {
	assert.True(t, (&User{Role: Role{RoleName: RolePatient}}).IsPatient())
	assert.False(t, (&User{Role: Role{RoleName: RoleRHUAdmin}}).IsPatient())

	// The role name decides, not the numeric ID.
	assert.False(t, (&User{RoleID: RoleIDPatient, Role: Role{RoleName: RoleSuperAdmin}}).IsPatient())
}
