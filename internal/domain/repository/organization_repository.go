package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization.
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	Update(org *entity.Organization) error
}
