package db_test

import (
	"context"
	"database/sql"
	"transactread/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID      uint `gorm:"primaryKey"`
	Address string
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

		gormDB, err := gorm.Open(dialector, &gorm.Config{
			TranslateError: true,
		})
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

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CreateOne", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("address","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("0xabc", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should save the record", func() {
				err := testDB.CreateOne(context.Background(), &Test{ID: 1, Address: "0xabc"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a uniqueness constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*$`).
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.CreateOne(context.Background(), &Test{ID: 1, Address: "0xabc"})
				Expect(err).To(Equal(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE address = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("0xabc", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).
						AddRow(1, "0xabc"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "address", "0xabc", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Address).To(Equal("0xabc"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE address = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("0xghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "address", "0xghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ListBy", func() {
		When("multiple records match", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE address = \$1 ORDER BY id asc.*`).
					WithArgs("0xabc").
					WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).
						AddRow(1, "0xabc").
						AddRow(2, "0xabc"))
			})

			It("should return all matching records in order", func() {
				var results []Test
				err := testDB.ListBy(context.Background(), "address", "0xabc", "id asc", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(1)))
				Expect(results[1].ID).To(Equal(uint(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE address.*`).
					WithArgs("0xbad").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.ListBy(context.Background(), "address", "0xbad", "", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("CountBy", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE address = \$1`).
				WithArgs("0xabc").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		})

		It("should return the number of matching records", func() {
			count, err := testDB.CountBy(context.Background(), "address", "0xabc", &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("ExistsBy", func() {
		When("a matching record exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE address = \$1`).
					WithArgs("0xabc").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("should return true", func() {
				exists, err := testDB.ExistsBy(context.Background(), "address", "0xabc", &Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
			})
		})

		When("no matching record exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE address = \$1`).
					WithArgs("0xghost").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("should return false", func() {
				exists, err := testDB.ExistsBy(context.Background(), "address", "0xghost", &Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
			})
		})
	})

	Describe("UpdateOneBy", func() {
		When("the record exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "tests" SET "address"=\$1 WHERE address = \$2`).
					WithArgs("0xnew", "0xabc").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should apply the updates", func() {
				err := testDB.UpdateOneBy(context.Background(), "address", "0xabc", &Test{}, map[string]any{"address": "0xnew"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "tests" SET "address"=\$1 WHERE address = \$2`).
					WithArgs("0xnew", "0xghost").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				err := testDB.UpdateOneBy(context.Background(), "address", "0xghost", &Test{}, map[string]any{"address": "0xnew"})
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})
	})

	Describe("DeleteAllBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "tests" WHERE address = \$1`).
				WithArgs("0xabc").
				WillReturnResult(sqlmock.NewResult(0, 3))
			mock.ExpectCommit()
		})

		It("should report the number of deleted rows", func() {
			deleted, err := testDB.DeleteAllBy(context.Background(), "address", "0xabc", &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
