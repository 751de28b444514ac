package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"scribe/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	It("decodes a well-formed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"bob","password":"secret"}`))

		var reg payload.RegisterRequest
		Expect(decoder.DecodeJSONPayload(req, &reg)).To(Succeed())
		Expect(reg.Username).To(Equal("bob"))
		Expect(reg.Password).To(Equal("secret"))
	})

	It("rejects unknown fields", func() {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"bob","role":"admin"}`))

		var reg payload.RegisterRequest
		Expect(decoder.DecodeJSONPayload(req, &reg)).NotTo(Succeed())
	})

	It("rejects malformed JSON", func() {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))

		var reg payload.RegisterRequest
		Expect(decoder.DecodeJSONPayload(req, &reg)).NotTo(Succeed())
	})
})

var _ = Describe("RegisterRequest", func() {
	DescribeTable("Validate",
		func(username, password string, valid bool) {
			err := payload.RegisterRequest{Username: username, Password: password}.Validate()
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("both present", "bob", "secret", true),
		Entry("missing username", "", "secret", false),
		Entry("missing password", "bob", "", false),
	)
})

var _ = Describe("CreatePostRequest", func() {
	It("requires every field", func() {
		err := payload.CreatePostRequest{Title: "t", Author: "a", Content: ""}.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("content"))
	})

	It("accepts a complete request", func() {
		err := payload.CreatePostRequest{Title: "t", Author: "a", Content: "c"}.Validate()
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("UpdatePostRequest", func() {
	It("accepts absent fields", func() {
		Expect(payload.UpdatePostRequest{}.Validate()).To(Succeed())
	})

	It("accepts a subset of fields", func() {
		title := "New title"
		Expect(payload.UpdatePostRequest{Title: &title}.Validate()).To(Succeed())
	})

	It("rejects a field explicitly set to empty", func() {
		empty := ""
		Expect(payload.UpdatePostRequest{Title: &empty}.Validate()).NotTo(Succeed())
	})

	It("carries only the supplied fields into the update", func() {
		content := "New content"
		upd := payload.UpdatePostRequest{Content: &content}.ToUpdate()
		Expect(upd.Title).To(BeNil())
		Expect(upd.Author).To(BeNil())
		Expect(*upd.Content).To(Equal("New content"))
	})
})
