package postgres

import (
	"errors"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	requestDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/request"
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
	"gorm.io/gorm"
)

// RequestRepository implements request.Repository using GORM.
type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) request.Repository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(req *request.Request) error {
	row := request.ToDataModel(req)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	req.ReqID = row.ReqID
	return nil
}

func (r *RequestRepository) GetByID(reqID int64) (*request.Request, error) {
	var row requestDatamodel.Request
	err := r.db.Where("req_id = ?", reqID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrRequestNotFound
		}
		return nil, err
	}
	return request.FromDataModel(&row), nil
}

func (r *RequestRepository) Update(req *request.Request) error {
	return r.db.Save(request.ToDataModel(req)).Error
}

func (r *RequestRepository) UpdateStatus(reqID int64, status request.Status) error {
	return r.db.Model(&requestDatamodel.Request{}).
		Where("req_id = ?", reqID).
		Update("status", string(status)).Error
}

func (r *RequestRepository) Delete(reqID int64) error {
	return r.db.Where("req_id = ?", reqID).Delete(&requestDatamodel.Request{}).Error
}
