package core

import (
	"strings"
	"transactread/internal/etherscan"
)

const nullSelector = "0x"

// Categorize maps a fetched transaction to exactly one category label.
// Rules apply in order, first match wins. Plain value transfers resolve
// direction against the owning wallet's address: incoming becomes Receive,
// everything else Send.
func Categorize(tx etherscan.Transaction, walletAddress string) Category {
	if tx.Value == "0" {
		return CategoryContractInteraction
	}

	method := strings.ToLower(tx.Method)
	if method != "" && method != nullSelector {
		if strings.Contains(method, "swap") || strings.Contains(method, "exchange") {
			return CategorySwap
		}
		if strings.Contains(method, "transfer") || strings.Contains(method, "mint") {
			return CategoryNFT
		}
		return CategoryContractInteraction
	}

	if strings.EqualFold(tx.To, walletAddress) {
		return CategoryReceive
	}
	return CategorySend
}
