package payload

import (
	"transactread/internal/core"

	"github.com/jellydator/validation"
)

type WalletLoginRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
}

func (w WalletLoginRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Address, validation.Required),
		validation.Field(&w.Message, validation.Required),
		validation.Field(&w.Signature, validation.Required),
		validation.Field(&w.Timestamp, validation.Required),
	)
}

func (w WalletLoginRequest) ToMessage() core.WalletAuthMessage {
	return core.WalletAuthMessage{
		Address:   w.Address,
		Message:   w.Message,
		Signature: w.Signature,
		Timestamp: w.Timestamp,
	}
}
