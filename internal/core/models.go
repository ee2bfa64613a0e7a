package core

import "time"

type Category string

const (
	CategorySend                Category = "Send"
	CategoryReceive             Category = "Receive"
	CategorySwap                Category = "Swap"
	CategoryNFT                 Category = "NFT"
	CategoryContractInteraction Category = "Contract Interaction"
)

// WalletAuthMessage is a signature login request. Timestamp is unix
// milliseconds as produced by the signing client.
type WalletAuthMessage struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
}

type UserRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthSession struct {
	Token string     `json:"token"`
	User  UserRecord `json:"user"`
}

type WalletRecord struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Label     string    `json:"label"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type TransactionRecord struct {
	ID        string    `json:"id"`
	Hash      string    `json:"hash"`
	From      string    `json:"from"`
	To        *string   `json:"to"`
	Value     string    `json:"value"`
	Method    *string   `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	GasUsed   string    `json:"gasUsed"`
	GasPrice  string    `json:"gasPrice"`
	Category  Category  `json:"category"`
	Summary   *string   `json:"summary"`
	WalletID  string    `json:"walletId"`
}

type SyncResult struct {
	Synced int `json:"synced"`
	Total  int `json:"total"`
}

type SummaryResult struct {
	Summary string `json:"summary"`
	// Degraded marks a fallback summary substituted after a provider quota
	// rejection; the text is not AI-generated.
	Degraded bool `json:"degraded"`
}
