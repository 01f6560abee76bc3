package dashboard_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/frahmantamala/reimbursement-workflow/internal/dashboard"
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
	"github.com/frahmantamala/reimbursement-workflow/internal/user"
)

func TestDashboardService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dashboard Service Suite")
}

// In-memory snapshot backing both the Queries and Repository interfaces.
type mockSnapshot struct {
	users    map[int64]*user.User
	requests []*request.Request
}

func newMockSnapshot() *mockSnapshot {
	return &mockSnapshot{users: make(map[int64]*user.User)}
}

func (m *mockSnapshot) WithSnapshot(fn func(q dashboard.Queries) error) error {
	return fn(m)
}

func (m *mockSnapshot) GetUser(empID int64) (*user.User, error) {
	u, ok := m.users[empID]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (m *mockSnapshot) RequestsByEmp(empID int64) ([]*request.Request, error) {
	var out []*request.Request
	for _, r := range m.requests {
		if r.EmpID == empID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockSnapshot) RequestsByManager(managerID int64) ([]*request.Request, error) {
	reports := make(map[int64]bool)
	for _, u := range m.users {
		if u.ManagerID != nil && *u.ManagerID == managerID {
			reports[u.EmpID] = true
		}
	}
	var out []*request.Request
	for _, r := range m.requests {
		if reports[r.EmpID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockSnapshot) RequestsByStatus(statuses ...request.Status) ([]*request.Request, error) {
	var out []*request.Request
	for _, r := range m.requests {
		for _, s := range statuses {
			if r.Status == s {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (m *mockSnapshot) AllRequests() ([]*request.Request, error) {
	return m.requests, nil
}

func (m *mockSnapshot) CountUsers() (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockSnapshot) CountRequests() (int64, error) {
	return int64(len(m.requests)), nil
}

func (m *mockSnapshot) CountRequestsByStatus(status request.Status) (int64, error) {
	var n int64
	for _, r := range m.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

var _ = Describe("DashboardService", func() {
	var (
		service  *dashboard.Service
		snapshot *mockSnapshot
		logger   *slog.Logger
	)

	addUser := func(empID int64, name, role string, managerID *int64) {
		snapshot.users[empID] = &user.User{EmpID: empID, Name: name, Role: role, ManagerID: managerID}
	}

	addRequest := func(reqID, empID int64, status request.Status) {
		snapshot.requests = append(snapshot.requests, &request.Request{
			ReqID:    reqID,
			EmpID:    empID,
			Category: "Travel",
			Amount:   50,
			Status:   status,
		})
	}

	reqIDs := func(reqs []*request.Request) []int64 {
		ids := make([]int64, 0, len(reqs))
		for _, r := range reqs {
			ids = append(ids, r.ReqID)
		}
		return ids
	}

	BeforeEach(func() {
		snapshot = newMockSnapshot()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = dashboard.NewService(snapshot, logger)

		managerID := int64(2)
		addUser(1, "Master Admin", user.RoleAdmin, nil)
		addUser(2, "Maya Manager", user.RoleManager, ptr(int64(1)))
		addUser(3, "Farid Finance", user.RoleFinance, ptr(int64(1)))
		addUser(4, "Andi Auditor", user.RoleAudit, ptr(int64(1)))
		addUser(5, "Eka Employee", user.RoleEmployee, &managerID)
		addUser(6, "Other Employee", user.RoleEmployee, nil)

		addRequest(10, 5, request.StatusPending)
		addRequest(11, 5, request.StatusPaid)
		addRequest(12, 6, request.StatusManagerApproved)
		addRequest(13, 2, request.StatusAwaitingFinance)
		addRequest(14, 6, request.StatusRejected)
	})

	Context("for an employee", func() {
		It("shows only their own requests", func() {
			dash, err := service.GetDashboard(5)

			Expect(err).ToNot(HaveOccurred())
			Expect(dash.Role).To(Equal(user.RoleEmployee))
			Expect(reqIDs(dash.MyRequests)).To(ConsistOf(int64(10), int64(11)))
			Expect(dash.TeamRequests).To(BeEmpty())
			Expect(dash.FinanceQueue).To(BeEmpty())
			Expect(dash.AllRequests).To(BeEmpty())
			Expect(dash.Stats).To(BeNil())
		})
	})

	Context("for a manager", func() {
		It("shows team requests in every status plus their own", func() {
			dash, err := service.GetDashboard(2)

			Expect(err).ToNot(HaveOccurred())
			Expect(reqIDs(dash.TeamRequests)).To(ConsistOf(int64(10), int64(11)))
			Expect(reqIDs(dash.MyRequests)).To(ConsistOf(int64(13)))
		})
	})

	Context("for finance", func() {
		It("queues manager approved and awaiting finance requests", func() {
			dash, err := service.GetDashboard(3)

			Expect(err).ToNot(HaveOccurred())
			Expect(reqIDs(dash.FinanceQueue)).To(ConsistOf(int64(12), int64(13)))
			Expect(dash.MyRequests).To(BeEmpty())
		})
	})

	Context("for an auditor", func() {
		It("shows every request without counters", func() {
			dash, err := service.GetDashboard(4)

			Expect(err).ToNot(HaveOccurred())
			Expect(dash.AllRequests).To(HaveLen(5))
			Expect(dash.Stats).To(BeNil())
		})
	})

	Context("for an admin", func() {
		It("shows every request with the aggregate counters", func() {
			dash, err := service.GetDashboard(1)

			Expect(err).ToNot(HaveOccurred())
			Expect(dash.AllRequests).To(HaveLen(5))
			Expect(dash.Stats).ToNot(BeNil())
			Expect(dash.Stats.TotalUsers).To(Equal(int64(6)))
			Expect(dash.Stats.TotalRequests).To(Equal(int64(5)))
			Expect(dash.Stats.Pending).To(Equal(int64(1)))
			Expect(dash.Stats.Paid).To(Equal(int64(1)))
		})
	})

	Context("for an unknown user", func() {
		It("returns not found", func() {
			_, err := service.GetDashboard(99)

			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})
})

func ptr[T any](v T) *T {
	return &v
}
