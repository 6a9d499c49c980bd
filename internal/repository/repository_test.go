package repository_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanyco86/sample-app/internal/db"
	"github.com/sanyco86/sample-app/internal/pagination"
	"github.com/sanyco86/sample-app/internal/repository"
	"github.com/sanyco86/sample-app/internal/repository/fake"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var (
			err   error
			users []repository.User
		)

		BeforeEach(func() {
			users = []repository.User{{Name: "Example User", Email: "example@railstutorial.org", Admin: true}}
		})

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx, users)
		})

		When("migration succeeds", func() {
			It("should migrate tables and seed users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Micropost{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Relationship{}))

				Expect(fakeStorage.SeedCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedArgsForCall(0)
				seeded, ok := records.(*[]repository.User)
				Expect(ok).To(BeTrue())
				Expect(*seeded).To(HaveLen(1))
				Expect(uuid.Validate((*seeded)[0].ID)).To(Succeed())
			})
		})

		When("there is nothing to seed", func() {
			BeforeEach(func() {
				users = nil
			})

			It("should only migrate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.SeedCallCount()).To(BeZero())
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})

		When("seeding data fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, repository.User{Name: "Michael", Email: "michael@example.com"})
		})

		When("storage succeeds", func() {
			It("should assign an id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(user.ID)).To(Succeed())

				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record.(*repository.User).Email).To(Equal("michael@example.com"))
			})
		})

		When("the email already exists", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return email taken", func() {
				Expect(err).To(MatchError(repository.ErrEmailTaken))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrEmailTaken))
			})
		})
	})

	Describe("GetUserByID", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByID(ctx, "user-1")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					*entity.(*repository.User) = repository.User{ID: value.(string), Name: "Michael"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-1"))
				Expect(user.Name).To(Equal("Michael"))

				_, column, _, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("id"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetUserByEmail", func() {
		It("should query the email column", func() {
			_, err := repo.GetUserByEmail(ctx, "michael@example.com")
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("email"))
			Expect(value).To(Equal("michael@example.com"))
		})
	})

	Describe("GetUsersByIDs", func() {
		It("should not query storage without ids", func() {
			users, err := repo.GetUsersByIDs(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(BeEmpty())
			Expect(fakeStorage.GetAllByCallCount()).To(BeZero())
		})

		It("should look the ids up in one query", func() {
			_, err := repo.GetUsersByIDs(ctx, []string{"a", "b"})
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal([]string{"a", "b"}))
		})
	})

	Describe("ListUsers", func() {
		It("should apply the page window", func() {
			_, err := repo.ListUsers(ctx, pagination.New(3, pagination.DefaultSize))
			Expect(err).NotTo(HaveOccurred())

			_, q, dest := fakeStorage.FindArgsForCall(0)
			Expect(q.Limit).To(Equal(30))
			Expect(q.Offset).To(Equal(60))
			Expect(q.Order).To(Equal("users.created_at ASC, users.id ASC"))
			Expect(dest).To(BeAssignableToTypeOf(&[]repository.User{}))
		})

		It("should wrap storage errors", func() {
			fakeStorage.FindReturns(fakeErr)
			_, err := repo.ListUsers(ctx, pagination.New(1, pagination.DefaultSize))
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("CountUsers", func() {
		It("should return the storage count", func() {
			fakeStorage.CountReturns(31, nil)
			count, err := repo.CountUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(31)))
		})
	})

	Describe("UpdateUser", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateUser(ctx, repository.User{
				ID:             "user-1",
				Name:           "New Name",
				Email:          "new@example.com",
				PasswordDigest: "digest",
				Admin:          true,
			})
		})

		It("should write only the profile columns", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.UpdateColumnsCallCount()).To(Equal(1))

			_, model, id, values := fakeStorage.UpdateColumnsArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(id).To(Equal("user-1"))
			Expect(values).To(Equal(map[string]any{
				"name":            "New Name",
				"email":           "new@example.com",
				"password_digest": "digest",
			}))
			Expect(values).NotTo(HaveKey("admin"))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(db.ErrNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(db.ErrDuplicate)
			})

			It("should return email taken", func() {
				Expect(err).To(MatchError(repository.ErrEmailTaken))
			})
		})
	})

	Describe("DeleteUser", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteUser(ctx, "user-1")
		})

		It("should cascade to microposts and relationships", func() {
			Expect(err).NotTo(HaveOccurred())

			_, model, id, cascades := fakeStorage.DeleteCascadeArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(id).To(Equal("user-1"))
			Expect(cascades).To(HaveLen(2))
			Expect(cascades[0].Model).To(BeAssignableToTypeOf(&repository.Micropost{}))
			Expect(cascades[0].Where).To(Equal("user_id = @id"))
			Expect(cascades[1].Model).To(BeAssignableToTypeOf(&repository.Relationship{}))
			Expect(cascades[1].Where).To(Equal("follower_id = @id OR followed_id = @id"))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.DeleteCascadeReturns(db.ErrNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})
})
