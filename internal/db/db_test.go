package db_test

import (
	"context"
	"database/sql"

	"scribe/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type entry struct {
	ID    uint `gorm:"primaryKey"`
	Title string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"entries\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&entry{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CreateRecord", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "entries" \("title"\) VALUES \(\$1\) RETURNING "id"$`).
				WithArgs("Hello").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

			mock.ExpectCommit()
		})

		It("should insert the record and fill the key", func() {
			record := entry{Title: "Hello"}
			err := testDB.CreateRecord(context.Background(), &record)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(uint(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE title = \$1 ORDER BY "entries"\."id" LIMIT \$2.*`).
					WithArgs("Hello", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
						AddRow(1, "Hello"))
			})

			It("should return the correct record", func() {
				var result entry
				err := testDB.GetOneBy(context.Background(), "title", "Hello", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Title).To(Equal("Hello"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE title = \$1 ORDER BY "entries"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result entry
				err := testDB.GetOneBy(context.Background(), "title", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllOrdered", func() {
		When("records exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" ORDER BY id DESC.*`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
						AddRow(2, "second").
						AddRow(1, "first"))
			})

			It("should return them in the requested order", func() {
				var results []entry
				err := testDB.GetAllOrdered(context.Background(), "id DESC", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(2)))
				Expect(results[1].ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" ORDER BY id DESC.*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []entry
				err := testDB.GetAllOrdered(context.Background(), "id DESC", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records ordered by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateFields", func() {
		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "entries" SET "title"=\$1 WHERE id = \$2$`).
					WithArgs("Updated", 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should report one affected row", func() {
				rows, err := testDB.UpdateFields(context.Background(), &entry{}, uint(7), map[string]any{"title": "Updated"})
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "entries" SET "title"=\$1 WHERE id = \$2$`).
					WithArgs("Updated", 404).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should report zero affected rows", func() {
				rows, err := testDB.UpdateFields(context.Background(), &entry{}, uint(404), map[string]any{"title": "Updated"})
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteByID", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "entries" WHERE id = \$1$`).
				WithArgs(3).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should delete the row and report it", func() {
			rows, err := testDB.DeleteByID(context.Background(), &entry{}, uint(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(int64(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
