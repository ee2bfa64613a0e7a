package core_test

import (
	"transactread/internal/core"
	"transactread/internal/etherscan"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Categorize", func() {
	const wallet = "0x1111111111111111111111111111111111111abc"
	const other = "0x2222222222222222222222222222222222222222"

	DescribeTable("assigns exactly one category",
		func(tx etherscan.Transaction, expected core.Category) {
			Expect(core.Categorize(tx, wallet)).To(Equal(expected))
		},

		Entry("zero value is a contract interaction",
			etherscan.Transaction{Value: "0", To: wallet},
			core.CategoryContractInteraction),
		Entry("zero value wins over a swap-looking method",
			etherscan.Transaction{Value: "0", Method: "swapExactTokensForTokens(uint256,uint256)"},
			core.CategoryContractInteraction),

		Entry("swap method",
			etherscan.Transaction{Value: "100", Method: "swapExactETHForTokens(uint256)"},
			core.CategorySwap),
		Entry("exchange method",
			etherscan.Transaction{Value: "100", Method: "exchangeTokens()"},
			core.CategorySwap),
		Entry("method matching is case insensitive",
			etherscan.Transaction{Value: "100", Method: "SwapTokens()"},
			core.CategorySwap),

		Entry("transfer method",
			etherscan.Transaction{Value: "100", Method: "safeTransferFrom(address,address,uint256)"},
			core.CategoryNFT),
		Entry("mint method",
			etherscan.Transaction{Value: "100", Method: "mint(uint256)"},
			core.CategoryNFT),

		Entry("any other method is a contract interaction",
			etherscan.Transaction{Value: "100", Method: "approve(address,uint256)"},
			core.CategoryContractInteraction),

		Entry("plain transfer into the wallet is a receive",
			etherscan.Transaction{Value: "100", To: wallet},
			core.CategoryReceive),
		Entry("direction check ignores address casing",
			etherscan.Transaction{Value: "100", To: "0x1111111111111111111111111111111111111ABC"},
			core.CategoryReceive),
		Entry("plain transfer out of the wallet is a send",
			etherscan.Transaction{Value: "100", To: other},
			core.CategorySend),
		Entry("null selector counts as a plain transfer",
			etherscan.Transaction{Value: "100", Method: "0x", To: other},
			core.CategorySend),
		Entry("contract creation with value is a send",
			etherscan.Transaction{Value: "100", To: ""},
			core.CategorySend),
	)
})
