package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/core/fake"
	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/pagination"
	"github.com/sanyco86/sample-app/internal/repository"
	tokenIssuer "github.com/sanyco86/sample-app/pkg/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("UserService", func() {
	var (
		fakeRepo      *fake.Repository
		fakeJWT       *fake.JWTIssuer
		fakePublisher *fake.EventPublisher
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		service *core.UserService

		sessionTTL time.Duration
		fakeErr    error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakePublisher = new(fake.EventPublisher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		sessionTTL = 720 * time.Hour

		service = core.NewUserService(fakeLogger, fakeRepo, fakeJWT, fakePublisher, sessionTTL).
			WithPasswordCost(bcrypt.MinCost)

		fakeErr = errors.New("fake error")
	})

	hash := func(password string) string {
		digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		return string(digest)
	}

	Describe("SignUp", func() {
		var (
			msg      core.SignupMessage
			session  core.Session
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			msg = core.SignupMessage{
				Name:     "Example User",
				Email:    "User@Example.COM",
				Password: "foobar",
			}
			genToken = jwt.New(jwt.SigningMethodHS512)

			fakeRepo.CreateUserStub = func(_ context.Context, user repository.User) (repository.User, error) {
				user.ID = "new-user"
				return user, nil
			}
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = service.SignUp(ctx, msg)
		})

		When("the email is free", func() {
			It("should create a regular user and sign them in", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.User.ID).To(Equal("new-user"))
				Expect(session.User.Admin).To(BeFalse())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, created := fakeRepo.CreateUserArgsForCall(0)
				Expect(created.Email).To(Equal("user@example.com"))
				Expect(created.Admin).To(BeFalse())
				Expect(bcrypt.CompareHashAndPassword([]byte(created.PasswordDigest), []byte("foobar"))).To(Succeed())

				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "Example User",
					Subject:    "new-user",
					Expiration: sessionTTL,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})

			It("should publish a signup event", func() {
				Expect(fakePublisher.PublishCallCount()).To(Equal(1))
				_, event := fakePublisher.PublishArgsForCall(0)
				Expect(event.Type).To(Equal(events.UserSignedUp))
				Expect(event.ActorID).To(Equal("new-user"))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrEmailTaken)
			})

			It("should return email taken", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
				Expect(fakeJWT.SignCallCount()).To(BeZero())
				Expect(fakePublisher.PublishCallCount()).To(BeZero())
			})
		})

		When("publishing the event fails", func() {
			BeforeEach(func() {
				fakePublisher.PublishReturns(fakeErr)
			})

			It("should still sign the user up", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			msg     core.AuthMessage
			session core.Session
			err     error
			userID  string
		)

		BeforeEach(func() {
			userID = uuid.NewString()
			msg = core.AuthMessage{Email: " Michael@Example.com ", Password: "password"}
			fakeJWT.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = service.Authenticate(ctx, msg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:             userID,
					Name:           "Michael",
					Email:          "michael@example.com",
					PasswordDigest: hash("password"),
				}, nil)
			})

			It("should return a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.User.ID).To(Equal(userID))

				_, email := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(email).To(Equal("michael@example.com"))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:             userID,
					PasswordDigest: hash("another"),
				}, nil)
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.SignCallCount()).To(BeZero())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CurrentUser", func() {
		var (
			user core.UserRecord
			err  error
		)

		JustBeforeEach(func() {
			user, err = service.CurrentUser(ctx, "token")
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{ID: "user-1", Name: "Michael"}, nil)
			})

			It("should load the subject", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Name).To(Equal("Michael"))
				_, id := fakeRepo.GetUserByIDArgsForCall(0)
				Expect(id).To(Equal("user-1"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return the validation error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
				Expect(fakeRepo.GetUserByIDCallCount()).To(BeZero())
			})
		})

		When("the subject no longer exists", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "gone"}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("UpdateProfile", func() {
		var (
			update  core.ProfileUpdate
			actorID string
			user    core.UserRecord
			err     error
		)

		BeforeEach(func() {
			actorID = "user-1"
			update = core.ProfileUpdate{Name: "New Name", Email: "New@Example.com"}
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:             "user-1",
				Name:           "Old Name",
				Email:          "old@example.com",
				PasswordDigest: "old-digest",
			}, nil)
		})

		JustBeforeEach(func() {
			user, err = service.UpdateProfile(ctx, actorID, "user-1", update)
		})

		When("the password is blank", func() {
			It("should keep the current digest", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Name).To(Equal("New Name"))

				_, updated := fakeRepo.UpdateUserArgsForCall(0)
				Expect(updated.Email).To(Equal("new@example.com"))
				Expect(updated.PasswordDigest).To(Equal("old-digest"))
				Expect(updated.Admin).To(BeFalse())
			})
		})

		When("a new password is given", func() {
			BeforeEach(func() {
				update.Password = "newsecret"
			})

			It("should store a new digest", func() {
				Expect(err).NotTo(HaveOccurred())
				_, updated := fakeRepo.UpdateUserArgsForCall(0)
				Expect(bcrypt.CompareHashAndPassword([]byte(updated.PasswordDigest), []byte("newsecret"))).To(Succeed())
			})
		})

		When("another user submits the update", func() {
			BeforeEach(func() {
				actorID = "user-2"
			})

			It("should be forbidden", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeRepo.UpdateUserCallCount()).To(BeZero())
			})
		})

		When("the email belongs to someone else", func() {
			BeforeEach(func() {
				fakeRepo.UpdateUserReturns(repository.ErrEmailTaken)
			})

			It("should return email taken", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
			})
		})
	})

	Describe("DeleteUser", func() {
		var (
			actor  repository.User
			target string
			err    error
		)

		BeforeEach(func() {
			actor = repository.User{ID: "admin-1", Admin: true}
			target = "user-2"
			fakeRepo.GetUserByIDStub = func(_ context.Context, id string) (repository.User, error) {
				if id == actor.ID {
					return actor, nil
				}
				return repository.User{}, repository.ErrUserNotFound
			}
		})

		JustBeforeEach(func() {
			err = service.DeleteUser(ctx, actor.ID, target)
		})

		When("an admin deletes another user", func() {
			It("should delete the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteUserArgsForCall(0)
				Expect(id).To(Equal("user-2"))

				_, event := fakePublisher.PublishArgsForCall(0)
				Expect(event.Type).To(Equal(events.UserDeleted))
				Expect(event.SubjectID).To(Equal("user-2"))
			})
		})

		When("the actor is not an admin", func() {
			BeforeEach(func() {
				actor.Admin = false
			})

			It("should be forbidden", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeRepo.DeleteUserCallCount()).To(BeZero())
			})
		})

		When("an admin deletes themselves", func() {
			BeforeEach(func() {
				target = actor.ID
			})

			It("should be forbidden", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeRepo.DeleteUserCallCount()).To(BeZero())
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(repository.ErrUserNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("GetProfile", func() {
		var (
			viewerID string
			profile  core.Profile
			err      error
		)

		BeforeEach(func() {
			viewerID = "viewer"
			fakeRepo.GetUserByIDReturns(repository.User{ID: "user-1", Name: "Michael"}, nil)
			fakeRepo.CountMicropostsReturns(2, nil)
			fakeRepo.CountFollowingReturns(3, nil)
			fakeRepo.CountFollowersReturns(4, nil)
			fakeRepo.ListMicropostsReturns([]repository.Micropost{
				{ID: "p2", UserID: "user-1", Content: "second"},
				{ID: "p1", UserID: "user-1", Content: "first"},
			}, nil)
			fakeRepo.RelationshipExistsReturns(true, nil)
		})

		JustBeforeEach(func() {
			profile, err = service.GetProfile(ctx, viewerID, "user-1", pagination.New(1, pagination.DefaultSize))
		})

		It("should load the stats, microposts and follow state", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.Stats).To(Equal(core.Stats{Microposts: 2, Following: 3, Followers: 4}))
			Expect(profile.Microposts).To(HaveLen(2))
			Expect(profile.Microposts[0].Author.Name).To(Equal("Michael"))
			Expect(profile.Following).To(BeTrue())

			_, follower, followed := fakeRepo.RelationshipExistsArgsForCall(0)
			Expect(follower).To(Equal("viewer"))
			Expect(followed).To(Equal("user-1"))
		})

		When("the viewer is anonymous", func() {
			BeforeEach(func() {
				viewerID = ""
			})

			It("should not check the relationship", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(profile.Following).To(BeFalse())
				Expect(fakeRepo.RelationshipExistsCallCount()).To(BeZero())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("ListUsers", func() {
		It("should return the page with the total", func() {
			fakeRepo.ListUsersReturns([]repository.User{{ID: "a"}, {ID: "b"}}, nil)
			fakeRepo.CountUsersReturns(32, nil)

			page := pagination.New(2, pagination.DefaultSize)
			list, err := service.ListUsers(ctx, page)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Users).To(HaveLen(2))
			Expect(list.Total).To(Equal(32))
			Expect(list.Page).To(Equal(page))

			_, requested := fakeRepo.ListUsersArgsForCall(0)
			Expect(requested).To(Equal(page))
		})
	})
})
