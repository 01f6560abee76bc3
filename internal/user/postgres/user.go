package postgres

import (
	"errors"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	userDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/user"
	"github.com/frahmantamala/reimbursement-workflow/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements user.Repository using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var rows []*userDatamodel.User
	if err := r.db.Order("emp_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(rows), nil
}

func (r *UserRepository) GetByID(empID int64) (*user.User, error) {
	var row userDatamodel.User
	err := r.db.Where("emp_id = ?", empID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&row), nil
}

func (r *UserRepository) Create(u *user.User) error {
	return r.db.Create(user.ToDataModel(u)).Error
}

func (r *UserRepository) Delete(empID int64) error {
	return r.db.Where("emp_id = ?", empID).Delete(&userDatamodel.User{}).Error
}
