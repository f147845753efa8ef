package telegramclient

import (
	"errors"
	"net/url"
)

// redactURL remove a URL (com o token) de erros de transporte
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
