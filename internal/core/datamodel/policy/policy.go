package policy

// Policy is the persistence model for an expense policy. Category is the
// upsert key. AmountLimit is advisory only and never enforced against request
// amounts.
type Policy struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Category    string `gorm:"column:category;uniqueIndex;not null"`
	AmountLimit int64  `gorm:"column:amount_limit;not null"`
	Description string `gorm:"column:description"`
}

func (Policy) TableName() string {
	return "policies"
}
