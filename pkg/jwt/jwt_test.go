package jwt_test

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	tokenIssuer "github.com/sanyco86/sample-app/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
		signed  string
		claims  jwt.MapClaims
		err     error
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "Michael Hartl",
			Subject:    uuid.NewString(),
			Expiration: time.Hour,
		}
		DeferCleanup(func() {
			tokenIssuer.TimeNow = time.Now
		})
	})

	JustBeforeEach(func() {
		signed, err = service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		claims, err = service.Validate(signed)
	})

	When("the token is fresh", func() {
		It("returns the claims", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["name"]).To(Equal(info.UserName))

			sub, subErr := tokenIssuer.Subject(claims)
			Expect(subErr).NotTo(HaveOccurred())
			Expect(sub).To(Equal(info.Subject))
		})

		It("signs with HS512", func() {
			token := service.Generate(info)
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
		})
	})

	When("the token was signed with another secret", func() {
		It("is rejected", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			_, err := other.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token is garbage", func() {
		It("is rejected", func() {
			_, err := service.Validate("not-a-token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the clock moved past the expiration", func() {
		It("reports the token as expired", func() {
			tokenIssuer.TimeNow = func() time.Time {
				return time.Now().Add(48 * time.Hour)
			}
			_, err := service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	When("the subject claim is missing", func() {
		It("is rejected", func() {
			_, err := tokenIssuer.Subject(jwt.MapClaims{"name": "nobody"})
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
