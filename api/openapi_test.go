package api_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOpenAPIDocument(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OpenAPI Document Suite")
}

var _ = Describe("openapi.yml", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("describes every route the server registers", func() {
		for _, path := range []string{
			"/login",
			"/dashboard",
			"/request",
			"/request/{req_id}",
			"/manager/approve/{req_id}",
			"/manager/reject/{req_id}",
			"/finance/approve/{req_id}",
			"/finance/reject/{req_id}",
			"/finance/pay/{req_id}",
			"/admin/users",
			"/admin/user",
			"/admin/user/{emp_id}",
			"/policies",
			"/admin/policy",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("enumerates all six lifecycle states", func() {
		schema := doc.Components.Schemas["Request"]
		Expect(schema).NotTo(BeNil())
		status := schema.Value.Properties["status"]
		Expect(status.Value.Enum).To(HaveLen(6))
	})
})
