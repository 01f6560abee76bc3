package postgres

import (
	"errors"

	policyDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/policy"
	"github.com/frahmantamala/reimbursement-workflow/internal/policy"
	"gorm.io/gorm"
)

// PolicyRepository implements policy.Repository using GORM.
type PolicyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) policy.Repository {
	return &PolicyRepository{db: db}
}

func (r *PolicyRepository) GetAll() ([]*policy.Policy, error) {
	var rows []*policyDatamodel.Policy
	if err := r.db.Order("category ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return policy.FromDataModelSlice(rows), nil
}

// Upsert runs the category lookup and write in one transaction so concurrent
// upserts of the same category cannot produce two rows.
func (r *PolicyRepository) Upsert(p *policy.Policy) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing policyDatamodel.Policy
		err := tx.Where("category = ?", p.Category).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				row := policy.ToDataModel(p)
				if err := tx.Create(row).Error; err != nil {
					return err
				}
				p.ID = row.ID
				return nil
			}
			return err
		}

		existing.AmountLimit = p.AmountLimit
		existing.Description = p.Description
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		p.ID = existing.ID
		return nil
	})
}
