package repository

import (
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// catalogRepository implements the CatalogRepository interface
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository instance
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateBranch(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

func (r *catalogRepository) GetBranch(id uint) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *catalogRepository) UpdateBranch(branch *models.Branch) error {
	return r.db.Save(branch).Error
}

func (r *catalogRepository) DeleteBranch(id uint) error {
	return r.db.Delete(&models.Branch{}, id).Error
}

func (r *catalogRepository) ListBranches() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Order("name ASC").Find(&branches).Error
	return branches, err
}

func (r *catalogRepository) CreateStudio(studio *models.Studio) error {
	return r.db.Create(studio).Error
}

func (r *catalogRepository) GetStudio(id uint) (*models.Studio, error) {
	var studio models.Studio
	if err := r.db.Preload("Branch").First(&studio, id).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

func (r *catalogRepository) UpdateStudio(studio *models.Studio) error {
	return r.db.Save(studio).Error
}

func (r *catalogRepository) DeleteStudio(id uint) error {
	return r.db.Delete(&models.Studio{}, id).Error
}

func (r *catalogRepository) ListStudios() ([]models.Studio, error) {
	var studios []models.Studio
	err := r.db.Preload("Branch").Order("name ASC").Find(&studios).Error
	return studios, err
}

func (r *catalogRepository) CreateActivityType(at *models.ActivityType) error {
	return r.db.Create(at).Error
}

func (r *catalogRepository) GetActivityType(id uint) (*models.ActivityType, error) {
	var at models.ActivityType
	if err := r.db.First(&at, id).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *catalogRepository) UpdateActivityType(at *models.ActivityType) error {
	return r.db.Save(at).Error
}

func (r *catalogRepository) DeleteActivityType(id uint) error {
	return r.db.Delete(&models.ActivityType{}, id).Error
}

func (r *catalogRepository) ListActivityTypes() ([]models.ActivityType, error) {
	var types []models.ActivityType
	err := r.db.Order("name ASC").Find(&types).Error
	return types, err
}
