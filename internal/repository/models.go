package repository

import "time"

// User identity. For wallet-signature logins the ID is the lowercased wallet
// address itself; provider logins carry the provider's opaque uid. Wallet-only
// users get a synthesized placeholder email to satisfy the uniqueness
// constraint.
type User struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`

	Wallets []Wallet `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Wallet struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Address   string    `gorm:"size:42;uniqueIndex;not null"` // 0x + 40 hex chars
	Label     string    `gorm:"type:varchar(255)"`
	UserID    string    `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`

	Transactions []Transaction `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE"`
}

type Transaction struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Hash      string    `gorm:"size:66;uniqueIndex;not null"` // dedupe key, 0x + 64 hex chars
	From      string    `gorm:"column:from_address;size:42;not null"`
	To        *string   `gorm:"column:to_address;size:42"` // nil for contract creation
	Value     string    `gorm:"size:100;not null"`         // wei, string to handle large numbers
	Method    *string   `gorm:"type:varchar(255)"`         // nil or "0x" means plain value transfer
	Timestamp time.Time `gorm:"not null;index"`
	GasUsed   string    `gorm:"size:100;not null"`
	GasPrice  string    `gorm:"size:100;not null"`
	Category  string    `gorm:"type:varchar(64);not null"` // immutable once set
	Summary   *string   `gorm:"type:text"`                 // filled in by enrichment
	WalletID  string    `gorm:"index;not null"`
}
