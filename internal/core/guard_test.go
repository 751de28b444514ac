package core_test

import (
	"scribe/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authorize", func() {
	var (
		ownerID string
		otherID string
		owned   core.PostRecord
		orphan  core.PostRecord
	)

	BeforeEach(func() {
		ownerID = "user-1"
		otherID = "user-2"
		owned = core.PostRecord{ID: 1, Title: "Hello", OwnerID: &ownerID}
		orphan = core.PostRecord{ID: 2, Title: "Legacy"}
	})

	Describe("read and list", func() {
		It("allows anonymous actors", func() {
			Expect(core.Authorize(core.OpRead, "", owned).Allowed).To(BeTrue())
			Expect(core.Authorize(core.OpList, "", core.PostRecord{}).Allowed).To(BeTrue())
		})

		It("allows authenticated actors", func() {
			Expect(core.Authorize(core.OpRead, otherID, owned).Allowed).To(BeTrue())
		})
	})

	Describe("create", func() {
		It("allows any authenticated user", func() {
			decision := core.Authorize(core.OpCreate, otherID, core.PostRecord{})
			Expect(decision.Allowed).To(BeTrue())
		})

		It("denies anonymous actors with the unauthenticated reason", func() {
			decision := core.Authorize(core.OpCreate, "", core.PostRecord{})
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(core.ReasonUnauthenticated))
		})
	})

	Describe("update and delete", func() {
		It("allows the owner", func() {
			Expect(core.Authorize(core.OpUpdate, ownerID, owned).Allowed).To(BeTrue())
			Expect(core.Authorize(core.OpDelete, ownerID, owned).Allowed).To(BeTrue())
		})

		It("denies a different authenticated user with the not-owner reason", func() {
			decision := core.Authorize(core.OpUpdate, otherID, owned)
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(core.ReasonNotOwner))
		})

		It("denies anonymous actors with the unauthenticated reason", func() {
			decision := core.Authorize(core.OpDelete, "", owned)
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(core.ReasonUnauthenticated))
		})

		It("denies everyone for a post without an owner", func() {
			for _, actor := range []string{ownerID, otherID} {
				decision := core.Authorize(core.OpUpdate, actor, orphan)
				Expect(decision.Allowed).To(BeFalse())
				Expect(decision.Reason).To(Equal(core.ReasonNotOwner))

				decision = core.Authorize(core.OpDelete, actor, orphan)
				Expect(decision.Allowed).To(BeFalse())
				Expect(decision.Reason).To(Equal(core.ReasonNotOwner))
			}
		})
	})
})
