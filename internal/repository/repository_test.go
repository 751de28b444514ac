package repository_test

import (
	"context"
	"errors"
	"reflect"

	"scribe/internal/db"
	"scribe/internal/repository"
	"scribe/internal/repository/fake"

	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BlogRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.BlogRepository
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewBlogRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("CreateUser", func() {
		var user repository.User

		BeforeEach(func() {
			user = repository.User{ID: "user-1", Username: "alice", PasswordHash: "hash"}
		})

		It("stores the user", func() {
			Expect(repo.CreateUser(ctx, user)).To(Succeed())
			Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
		})

		When("the unique index rejects the username", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(&pgconn.PgError{Code: "23505"})
			})

			It("returns the duplicate username error", func() {
				err := repo.CreateUser(ctx, user)
				Expect(err).To(MatchError(repository.ErrDuplicateUsername))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(fakeErr)
			})

			It("wraps and returns the error", func() {
				err := repo.CreateUser(ctx, user)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user is absent", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns the user not found error", func() {
				_, err := repo.GetUserByUsername(ctx, "ghost")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		It("queries by the username column", func() {
			_, err := repo.GetUserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("username"))
			Expect(value).To(Equal("alice"))
		})
	})

	Describe("CreatePost", func() {
		var post repository.Post

		BeforeEach(func() {
			post = repository.Post{Title: "  Hello  ", Author: " Bob ", Content: " World "}
		})

		It("trims all text fields before storing", func() {
			created, err := repo.CreatePost(ctx, post)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Title).To(Equal("Hello"))
			Expect(created.Author).To(Equal("Bob"))
			Expect(created.Content).To(Equal("World"))
			Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
		})

		DescribeTable("rejects empty required fields",
			func(title, author, content, field string) {
				_, err := repo.CreatePost(ctx, repository.Post{Title: title, Author: author, Content: content})
				Expect(err).To(MatchError(repository.ErrEmptyField))
				Expect(err.Error()).To(ContainSubstring(field))
				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(0))
			},
			Entry("empty title", "", "a", "c", "title"),
			Entry("whitespace title", "   ", "a", "c", "title"),
			Entry("empty author", "t", "", "c", "author"),
			Entry("empty content", "t", "a", "", "content"),
		)
	})

	Describe("GetPost", func() {
		When("the post is absent", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns the post not found error", func() {
				_, err := repo.GetPost(ctx, 42)
				Expect(err).To(MatchError(repository.ErrPostNotFound))
			})
		})
	})

	Describe("ListPosts", func() {
		It("orders newest-created first with id as tiebreaker", func() {
			_, err := repo.ListPosts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.GetAllOrderedCallCount()).To(Equal(1))
			_, order, _ := fakeStorage.GetAllOrderedArgsForCall(0)
			Expect(order).To(Equal("created_at DESC, id DESC"))
		})
	})

	Describe("UpdatePost", func() {
		var (
			newTitle   string
			newContent string
		)

		BeforeEach(func() {
			newTitle = "  New title  "
			newContent = "New content"
			fakeStorage.UpdateFieldsReturns(1, nil)
		})

		It("only touches the supplied fields, trimmed", func() {
			_, err := repo.UpdatePost(ctx, 7, repository.PostChanges{
				Title:   &newTitle,
				Content: &newContent,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.UpdateFieldsCallCount()).To(Equal(1))
			_, _, id, fields := fakeStorage.UpdateFieldsArgsForCall(0)
			Expect(id).To(Equal(uint(7)))
			Expect(fields).To(Equal(map[string]any{
				"title":   "New title",
				"content": "New content",
			}))
		})

		It("fetches the full row after updating", func() {
			_, err := repo.UpdatePost(ctx, 7, repository.PostChanges{Title: &newTitle})
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
		})

		When("no fields are supplied", func() {
			It("skips the update and returns the current row", func() {
				_, err := repo.UpdatePost(ctx, 7, repository.PostChanges{})
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpdateFieldsCallCount()).To(Equal(0))
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
			})
		})

		When("a supplied field is empty after trimming", func() {
			It("returns an empty field error without updating", func() {
				blank := "   "
				_, err := repo.UpdatePost(ctx, 7, repository.PostChanges{Title: &blank})
				Expect(err).To(MatchError(repository.ErrEmptyField))
				Expect(fakeStorage.UpdateFieldsCallCount()).To(Equal(0))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateFieldsReturns(0, nil)
			})

			It("returns the post not found error", func() {
				_, err := repo.UpdatePost(ctx, 7, repository.PostChanges{Title: &newTitle})
				Expect(err).To(MatchError(repository.ErrPostNotFound))
			})
		})
	})

	Describe("DeletePost", func() {
		When("the post exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(1, nil)
			})

			It("deletes it", func() {
				Expect(repo.DeletePost(ctx, 3)).To(Succeed())
				_, _, id := fakeStorage.DeleteByIDArgsForCall(0)
				Expect(id).To(Equal(uint(3)))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(0, nil)
			})

			It("returns the post not found error", func() {
				Expect(repo.DeletePost(ctx, 3)).To(MatchError(repository.ErrPostNotFound))
			})
		})
	})

	Describe("Post model", func() {
		It("nulls the owner reference when the owning user is deleted", func() {
			field, ok := reflect.TypeOf(repository.Post{}).FieldByName("Owner")
			Expect(ok).To(BeTrue())
			Expect(field.Tag.Get("gorm")).To(ContainSubstring("OnDelete:SET NULL"))
		})
	})

	Describe("MigrateTables", func() {
		It("migrates the user and post tables", func() {
			Expect(repo.MigrateTables()).To(Succeed())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(2))
		})
	})
})
