package postgres

import (
	"errors"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	requestDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/request"
	userDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/user"
	"github.com/frahmantamala/reimbursement-workflow/internal/dashboard"
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
	"github.com/frahmantamala/reimbursement-workflow/internal/user"
	"gorm.io/gorm"
)

// DashboardRepository implements dashboard.Repository using GORM. All reads
// of one dashboard run inside a single transaction.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) WithSnapshot(fn func(q dashboard.Queries) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&snapshotQueries{tx: tx})
	})
}

type snapshotQueries struct {
	tx *gorm.DB
}

func (q *snapshotQueries) GetUser(empID int64) (*user.User, error) {
	var row userDatamodel.User
	err := q.tx.Where("emp_id = ?", empID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&row), nil
}

func (q *snapshotQueries) RequestsByEmp(empID int64) ([]*request.Request, error) {
	var rows []*requestDatamodel.Request
	err := q.tx.Where("emp_id = ?", empID).Order("req_id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return request.FromDataModelSlice(rows), nil
}

// RequestsByManager returns the requests of every user whose reporting edge
// points at the manager.
func (q *snapshotQueries) RequestsByManager(managerID int64) ([]*request.Request, error) {
	var rows []*requestDatamodel.Request
	err := q.tx.
		Where("emp_id IN (?)", q.tx.Model(&userDatamodel.User{}).Select("emp_id").Where("manager_id = ?", managerID)).
		Order("req_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return request.FromDataModelSlice(rows), nil
}

func (q *snapshotQueries) RequestsByStatus(statuses ...request.Status) ([]*request.Request, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	var rows []*requestDatamodel.Request
	err := q.tx.Where("status IN ?", values).Order("req_id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return request.FromDataModelSlice(rows), nil
}

func (q *snapshotQueries) AllRequests() ([]*request.Request, error) {
	var rows []*requestDatamodel.Request
	if err := q.tx.Order("req_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return request.FromDataModelSlice(rows), nil
}

func (q *snapshotQueries) CountUsers() (int64, error) {
	var count int64
	err := q.tx.Model(&userDatamodel.User{}).Count(&count).Error
	return count, err
}

func (q *snapshotQueries) CountRequests() (int64, error) {
	var count int64
	err := q.tx.Model(&requestDatamodel.Request{}).Count(&count).Error
	return count, err
}

func (q *snapshotQueries) CountRequestsByStatus(status request.Status) (int64, error) {
	var count int64
	err := q.tx.Model(&requestDatamodel.Request{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}
