package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/reimbursement-workflow/internal/policy"
	policyPostgres "github.com/frahmantamala/reimbursement-workflow/internal/policy/postgres"
)

func TestPolicyPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Policy Postgres Suite")
}

// SQLitePolicy is a SQLite-compatible model for testing
type SQLitePolicy struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Category    string `gorm:"column:category;uniqueIndex;not null"`
	AmountLimit int64  `gorm:"column:amount_limit;not null"`
	Description string `gorm:"column:description"`
}

func (SQLitePolicy) TableName() string {
	return "policies"
}

var _ = Describe("Policy PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo policy.Repository
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLitePolicy{})
		Expect(err).NotTo(HaveOccurred())

		repo = policyPostgres.NewPolicyRepository(db)
	})

	Describe("Upsert", func() {
		It("should insert a new policy for an unseen category", func() {
			p := &policy.Policy{Category: "Travel", AmountLimit: 500, Description: "Trips"}

			Expect(repo.Upsert(p)).To(Succeed())
			Expect(p.ID).To(BeNumerically(">", 0))

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})

		It("should overwrite the existing row on a repeated category", func() {
			first := &policy.Policy{Category: "Travel", AmountLimit: 500, Description: "Trips"}
			Expect(repo.Upsert(first)).To(Succeed())

			second := &policy.Policy{Category: "Travel", AmountLimit: 750, Description: "Trips and lodging"}
			Expect(repo.Upsert(second)).To(Succeed())
			Expect(second.ID).To(Equal(first.ID))

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].AmountLimit).To(Equal(int64(750)))
			Expect(all[0].Description).To(Equal("Trips and lodging"))
		})
	})

	Describe("GetAll", func() {
		It("should list policies ordered by category", func() {
			Expect(repo.Upsert(&policy.Policy{Category: "Travel", AmountLimit: 500})).To(Succeed())
			Expect(repo.Upsert(&policy.Policy{Category: "Meals", AmountLimit: 100})).To(Succeed())
			Expect(repo.Upsert(&policy.Policy{Category: "Office", AmountLimit: 50})).To(Succeed())

			all, err := repo.GetAll()

			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
			Expect(all[0].Category).To(Equal("Meals"))
			Expect(all[1].Category).To(Equal("Office"))
			Expect(all[2].Category).To(Equal("Travel"))
		})
	})
})
