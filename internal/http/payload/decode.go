package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	return nil
}
