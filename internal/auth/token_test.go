package auth

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/user-management/internal"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

var _ = ginkgo.Describe("TokenManager", func() {
	var (
		manager *TokenManager
		secret  = "test-secret-key-that-is-long-enough"
		issuer  = "http://chnirt.dev.io"
	)

	ginkgo.BeforeEach(func() {
		manager = NewTokenManager(secret, issuer, DefaultTokenTTL)
	})

	ginkgo.Describe("Generate", func() {
		ginkgo.It("should embed issuer, subject and audience claims", func() {
			token, err := manager.Generate("user-123", "alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(token).ToNot(gomega.BeEmpty())

			claims, err := manager.Verify(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.Issuer).To(gomega.Equal(issuer))
			gomega.Expect(claims.UserID()).To(gomega.Equal("user-123"))
			gomega.Expect(claims.Username()).To(gomega.Equal("alice"))
		})

		ginkgo.It("should expire thirty days out", func() {
			token, err := manager.Generate("user-123", "alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := manager.Verify(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			expected := time.Now().Add(30 * 24 * time.Hour)
			gomega.Expect(claims.ExpiresAt.Time).To(gomega.BeTemporally("~", expected, time.Minute))
		})
	})

	ginkgo.Describe("Verify", func() {
		ginkgo.It("should reject a tampered token", func() {
			token, err := manager.Generate("user-123", "alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			tampered := token[:len(token)-4] + "XXXX"
			_, err = manager.Verify(tampered)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject a token signed with a different secret", func() {
			other := NewTokenManager("another-secret-key-that-is-long-too", issuer, DefaultTokenTTL)
			token, err := other.Generate("user-123", "alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = manager.Verify(token)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject an expired token", func() {
			expired := &TokenManager{secret: []byte(secret), issuer: issuer, ttl: -time.Hour}
			token, err := expired.Generate("user-123", "alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = manager.Verify(token)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject garbage input", func() {
			_, err := manager.Verify("not-a-token")
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})
	})
})
