package etherscan

import "net/http"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name HTTPClient . HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
