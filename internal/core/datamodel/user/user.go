package user

// User is the persistence model for an employee record. EmpID is assigned by
// the admin on creation, never by the database. ManagerID is a self reference
// to another user's EmpID; deleting a manager may leave it dangling, readers
// treat that as an orphaned edge rather than an error.
type User struct {
	EmpID        int64  `gorm:"column:emp_id;primaryKey"`
	Name         string `gorm:"column:name;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         string `gorm:"column:role;not null"`
	ManagerID    *int64 `gorm:"column:manager_id"`
}

func (User) TableName() string {
	return "users"
}
