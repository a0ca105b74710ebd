package repository

import (
	"rhu-patient-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Role, error)
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
}
