package request_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/reimbursement-workflow/internal/request"
)

var _ = Describe("Request Handler Integration", func() {
	var (
		mockRepo  *mockRequestRepository
		directory *mockDirectory
		uploader  *mockUploader
		handler   *request.Handler
		router    *chi.Mux
	)

	BeforeEach(func() {
		mockRepo = newMockRequestRepository()
		directory = newMockDirectory()
		uploader = &mockUploader{url: "http://storage.local/receipts/abc.png"}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := request.NewService(mockRepo, directory, uploader, logger)
		handler = request.NewHandler(service)

		router = chi.NewRouter()
		router.Post("/request", handler.CreateRequest)
		router.Put("/request/{req_id}", handler.UpdateRequest)
		router.Delete("/request/{req_id}", handler.DeleteRequest)
		router.Put("/manager/approve/{req_id}", handler.ManagerApprove)
		router.Put("/finance/pay/{req_id}", handler.FinancePay)
	})

	multipartBody := func(fields map[string]string) (*bytes.Buffer, string) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		for k, v := range fields {
			Expect(writer.WriteField(k, v)).To(Succeed())
		}
		Expect(writer.Close()).To(Succeed())
		return body, writer.FormDataContentType()
	}

	It("should create a request from a multipart form", func() {
		body, contentType := multipartBody(map[string]string{
			"emp_id":      "2",
			"category":    "Travel",
			"description": "Taxi",
			"amount":      "50",
		})

		req := httptest.NewRequest(http.MethodPost, "/request", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var response map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response["message"]).To(Equal("Request created"))
		Expect(response["status"]).To(Equal("Pending"))
		Expect(response["req_id"]).To(BeNumerically(">", 0))
	})

	It("should reject a non-numeric amount", func() {
		body, contentType := multipartBody(map[string]string{
			"emp_id": "2",
			"amount": "a lot",
		})

		req := httptest.NewRequest(http.MethodPost, "/request", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should update a request and report the reset status", func() {
		seeded := &request.Request{EmpID: 2, Category: "Travel", Amount: 50, Status: request.StatusRejected}
		Expect(mockRepo.Create(seeded)).To(Succeed())

		payload := strings.NewReader(`{"category":"Meals","description":"Dinner","amount":80}`)
		req := httptest.NewRequest(http.MethodPut, "/request/1", payload)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response["status"]).To(Equal("Pending"))
	})

	It("should return 404 for an unknown request id", func() {
		req := httptest.NewRequest(http.MethodPut, "/manager/approve/99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))

		var response map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response["detail"]).ToNot(BeEmpty())
	})

	It("should return 400 for an illegal transition", func() {
		seeded := &request.Request{EmpID: 2, Category: "Travel", Amount: 50, Status: request.StatusRejected}
		Expect(mockRepo.Create(seeded)).To(Succeed())

		req := httptest.NewRequest(http.MethodPut, "/finance/pay/1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should refuse to delete a non-pending request", func() {
		seeded := &request.Request{EmpID: 2, Category: "Travel", Amount: 50, Status: request.StatusPaid}
		Expect(mockRepo.Create(seeded)).To(Succeed())

		req := httptest.NewRequest(http.MethodDelete, "/request/1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(mockRepo.requests).To(HaveKey(int64(1)))
	})

	It("should reject a malformed request id", func() {
		req := httptest.NewRequest(http.MethodDelete, "/request/abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
