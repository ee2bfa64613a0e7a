package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

type AddWalletRequest struct {
	Address string `json:"address"`
	Label   string `json:"label"`
}

func (a AddWalletRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&a.Label, validation.Length(0, 255)),
	)
}
