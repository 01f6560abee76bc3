package postgres

import (
	"errors"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/frahmantamala/reimbursement-workflow/internal/auth"
	userDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// AuthRepository implements auth.Repository using GORM. Name is the login
// lookup key; it is not constrained unique, so the first match wins.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.Repository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetAccountByName(name string) (*auth.Account, error) {
	var row userDatamodel.User
	err := r.db.Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}

	return &auth.Account{
		EmpID:        row.EmpID,
		Name:         row.Name,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
	}, nil
}
