package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var body utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &RemoteError{
		Status:  resp.StatusCode(),
		Message: message,
		cause:   sentinelFromStatus(resp.StatusCode()),
	}
}

func sentinelFromStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return service.ErrValidation
	case http.StatusUnauthorized:
		return service.ErrDecryption
	case http.StatusLocked:
		return service.ErrLocked
	case http.StatusNotFound:
		return service.ErrNotFound
	case http.StatusInternalServerError:
		return store.ErrStorage
	default:
		return ErrUnexpectedResponse
	}
}
