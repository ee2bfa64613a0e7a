package jwt_test

import (
	"time"

	tokenIssuer "transactread/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		secret  []byte
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)

		info = tokenIssuer.TokenInfo{
			Subject:    "0xabc0000000000000000000000000000000000001",
			Email:      "0xabc0000000000000000000000000000000000001@wallet.transactread.io",
			AuthMethod: tokenIssuer.AuthMethodWallet,
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("produces a verifiable token carrying the identity claims", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal(info.Subject))
			Expect(claims["email"]).To(Equal(info.Email))
			Expect(claims["auth_method"]).To(Equal(tokenIssuer.AuthMethodWallet))
		})

		It("sets expiration relative to issue time", func() {
			issued := time.Now()
			tokenIssuer.TimeNow = func() time.Time { return issued }

			token := service.Generate(info)
			claims, ok := token.Claims.(jwt.MapClaims)
			Expect(ok).To(BeTrue())
			Expect(claims["iat"]).To(Equal(issued.Unix()))
			Expect(claims["exp"]).To(Equal(issued.Add(time.Hour).Unix()))
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			var err error
			signed, err = service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token was signed with a different secret", func() {
			It("fails validation", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				_, err := other.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("fails validation", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token uses the none algorithm", func() {
			It("fails validation", func() {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"sub": info.Subject,
					"exp": time.Now().Add(time.Hour).Unix(),
				})
				tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(tokenStr)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("fails with expired error", func() {
				tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }

				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the token carries no expiration claim", func() {
			It("fails closed", func() {
				bare := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
					"sub": info.Subject,
				})
				tokenStr, err := bare.SignedString(secret)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(tokenStr)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
