package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
	requestPostgres "github.com/frahmantamala/reimbursement-workflow/internal/request/postgres"
)

func TestRequestPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Request Postgres Suite")
}

// SQLiteRequest is a SQLite-compatible model for testing
type SQLiteRequest struct {
	ReqID       int64   `gorm:"column:req_id;primaryKey;autoIncrement"`
	EmpID       int64   `gorm:"column:emp_id;not null"`
	Category    string  `gorm:"column:category"`
	Amount      float64 `gorm:"column:amount;not null"`
	Description string  `gorm:"column:description"`
	ImagePath   *string `gorm:"column:image_path"`
	Status      string  `gorm:"column:status;default:Pending"`
}

func (SQLiteRequest) TableName() string {
	return "requests"
}

var _ = Describe("Request PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo request.Repository
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteRequest{})
		Expect(err).NotTo(HaveOccurred())

		repo = requestPostgres.NewRequestRepository(db)
	})

	newRequest := func() *request.Request {
		return &request.Request{
			EmpID:       5,
			Category:    "Travel",
			Amount:      50,
			Description: "Taxi",
			Status:      request.StatusPending,
		}
	}

	Describe("Create", func() {
		It("should persist and assign a request id", func() {
			req := newRequest()

			err := repo.Create(req)

			Expect(err).NotTo(HaveOccurred())
			Expect(req.ReqID).To(BeNumerically(">", 0))
		})
	})

	Describe("GetByID", func() {
		It("should return the stored request", func() {
			req := newRequest()
			Expect(repo.Create(req)).To(Succeed())

			found, err := repo.GetByID(req.ReqID)

			Expect(err).NotTo(HaveOccurred())
			Expect(found.EmpID).To(Equal(int64(5)))
			Expect(found.Amount).To(Equal(50.0))
			Expect(found.Status).To(Equal(request.StatusPending))
		})

		It("should return not found for a missing request", func() {
			_, err := repo.GetByID(4242)

			Expect(err).To(Equal(internal.ErrRequestNotFound))
		})
	})

	Describe("Update", func() {
		It("should overwrite the stored fields", func() {
			req := newRequest()
			Expect(repo.Create(req)).To(Succeed())

			req.Category = "Meals"
			req.Amount = 80
			req.Status = request.StatusPending
			Expect(repo.Update(req)).To(Succeed())

			found, err := repo.GetByID(req.ReqID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Category).To(Equal("Meals"))
			Expect(found.Amount).To(Equal(80.0))
		})
	})

	Describe("UpdateStatus", func() {
		It("should change only the status column", func() {
			req := newRequest()
			Expect(repo.Create(req)).To(Succeed())

			Expect(repo.UpdateStatus(req.ReqID, request.StatusManagerApproved)).To(Succeed())

			found, err := repo.GetByID(req.ReqID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(request.StatusManagerApproved))
			Expect(found.Amount).To(Equal(50.0))
		})
	})

	Describe("Delete", func() {
		It("should remove the request", func() {
			req := newRequest()
			Expect(repo.Create(req)).To(Succeed())

			Expect(repo.Delete(req.ReqID)).To(Succeed())

			_, err := repo.GetByID(req.ReqID)
			Expect(err).To(Equal(internal.ErrRequestNotFound))
		})

		It("should succeed when the request is absent", func() {
			Expect(repo.Delete(4242)).To(Succeed())
		})
	})
})
