package request

// Request is the persistence model for a reimbursement request.
type Request struct {
	ReqID       int64   `gorm:"column:req_id;primaryKey;autoIncrement"`
	EmpID       int64   `gorm:"column:emp_id;not null"`
	Category    string  `gorm:"column:category"`
	Amount      float64 `gorm:"column:amount;not null"`
	Description string  `gorm:"column:description"`
	ImagePath   *string `gorm:"column:image_path"`
	Status      string  `gorm:"column:status;default:Pending"`
}

func (Request) TableName() string {
	return "requests"
}
