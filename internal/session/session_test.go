package session_test

import (
	"scribe/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var store *session.Store

	BeforeEach(func() {
		store = session.NewStore()
	})

	Describe("Establish", func() {
		It("returns an opaque 64 character hex token", func() {
			token, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(HaveLen(64))
			Expect(token).To(MatchRegexp(`^[0-9a-f]+$`))
		})

		It("issues distinct tokens for distinct users", func() {
			token1, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())
			token2, err := store.Establish("user-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(token1).NotTo(Equal(token2))
		})

		It("invalidates the user's previous session", func() {
			oldToken, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())

			newToken, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(newToken).NotTo(Equal(oldToken))

			_, ok := store.Resolve(oldToken)
			Expect(ok).To(BeFalse())

			userID, ok := store.Resolve(newToken)
			Expect(ok).To(BeTrue())
			Expect(userID).To(Equal("user-1"))
		})
	})

	Describe("Resolve", func() {
		It("returns the bound identity", func() {
			token, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())

			userID, ok := store.Resolve(token)
			Expect(ok).To(BeTrue())
			Expect(userID).To(Equal("user-1"))
		})

		It("rejects an unknown token", func() {
			_, ok := store.Resolve("no-such-token")
			Expect(ok).To(BeFalse())
		})

		It("rejects an empty token", func() {
			_, ok := store.Resolve("")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Terminate", func() {
		It("clears the binding", func() {
			token, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())

			store.Terminate(token)

			_, ok := store.Resolve(token)
			Expect(ok).To(BeFalse())
		})

		It("ignores unknown tokens", func() {
			store.Terminate("no-such-token")

			token, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())
			_, ok := store.Resolve(token)
			Expect(ok).To(BeTrue())
		})

		It("allows a fresh session afterwards", func() {
			token, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())
			store.Terminate(token)

			fresh, err := store.Establish("user-1")
			Expect(err).NotTo(HaveOccurred())
			userID, ok := store.Resolve(fresh)
			Expect(ok).To(BeTrue())
			Expect(userID).To(Equal("user-1"))
		})
	})
})
