package config_test

import (
	"os"
	"time"
	"transactread/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	BeforeEach(func() {
		GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://localhost:5432/transactread")
		GinkgoT().Setenv("JWT_SECRET", "secret")
		GinkgoT().Setenv("ETHERSCAN_API_KEY", "etherscan-key")
		GinkgoT().Setenv("OPENAI_API_KEY", "openai-key")
	})

	It("applies defaults for optional settings", func() {
		cfg, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Port).To(Equal("8080"))
		Expect(cfg.EtherscanAPIURL).To(Equal("https://api.etherscan.io/api"))
		Expect(cfg.OpenAIModel).To(Equal("gpt-3.5-turbo"))
		Expect(cfg.MaxWalletsPerUser).To(Equal(10))
		Expect(cfg.TokenExpiration).To(Equal(168 * time.Hour))
		Expect(cfg.ExplorerTimeout).To(Equal(15 * time.Second))
		Expect(cfg.SummaryTimeout).To(Equal(30 * time.Second))
	})

	It("reads overrides from the environment", func() {
		GinkgoT().Setenv("API_PORT", "9090")
		GinkgoT().Setenv("MAX_WALLETS_PER_USER", "3")
		GinkgoT().Setenv("TOKEN_EXPIRATION", "24h")

		cfg, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Port).To(Equal("9090"))
		Expect(cfg.MaxWalletsPerUser).To(Equal(3))
		Expect(cfg.TokenExpiration).To(Equal(24 * time.Hour))
	})

	It("fails when a required setting is absent", func() {
		Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())

		_, err := config.NewApp()
		Expect(err).To(HaveOccurred())
	})
})
