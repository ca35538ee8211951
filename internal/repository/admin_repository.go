package repository

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// AdminRepository deliberately keeps gorm error values (ErrRecordNotFound in
// particular) rather than mapping them: the login path must translate an
// absent admin to Unauthorized, not NotFound, and the seeder reads the whole
// table anyway.
type AdminRepository interface {
	FindByEmail(email string) (*models.Admin, error)
	FindAllOrderedByEmail() ([]models.Admin, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	DeleteByIDs(ids []string) error
	InTransaction(fn func(AdminRepository) error) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindAllOrderedByEmail() ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.Order("email ASC").Find(&admins).Error
	return admins, err
}

func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

func (r *adminRepository) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Admin{}, "id IN ?", ids).Error
}

// InTransaction runs fn against a repository bound to a single transaction.
// The bootstrap seeder uses this so its read-diff-correct pass is one unit
// and no request can observe a zero-admin or multi-admin state.
func (r *adminRepository) InTransaction(fn func(AdminRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&adminRepository{db: tx})
	})
}
