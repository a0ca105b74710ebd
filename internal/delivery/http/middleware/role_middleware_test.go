package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rhu-patient-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequirePatient(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	RequirePatient(next).ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	called = false
	rec = httptest.NewRecorder()
	RequirePatient(next).ServeHTTP(rec, requestWithRole(entity.RoleIDRHUAdmin))
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireFrontDesk(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for _, roleID := range []int{entity.RoleIDRHUAdmin, entity.RoleIDBHSAdmin, entity.RoleIDSuperAdmin} {
		rec := httptest.NewRecorder()
		RequireFrontDesk(next).ServeHTTP(rec, requestWithRole(roleID))
		assert.Equal(t, http.StatusOK, rec.Code, "role %d should be allowed", roleID)
	}

	for _, roleID := range []int{entity.RoleIDPatient, entity.RoleIDPharmacyAdmin} {
		rec := httptest.NewRecorder()
		RequireFrontDesk(next).ServeHTTP(rec, requestWithRole(roleID))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %d should be denied", roleID)
	}
}

func TestRequireRoleMissingContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	RequirePatient(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
