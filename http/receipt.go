package http

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"statement-wizard/domain"
)

const maxErrorBody = 4 << 10

var errMissingApplicationID = errors.New("response has no applicationId")

// decodeReceipt reads the endpoint's JSON answer. Any status outside 2xx is a
// failure regardless of what the body says.
func decodeReceipt(status int, body io.Reader) (domain.SubmissionReceipt, error) {
	if status < 200 || status > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return domain.SubmissionReceipt{}, fmt.Errorf("%w: status %d: %s",
			domain.ErrTransportFailure, status, strings.TrimSpace(string(snippet)))
	}

	var receipt domain.SubmissionReceipt
	if err := json.NewDecoder(body).Decode(&receipt); err != nil {
		return domain.SubmissionReceipt{}, fmt.Errorf("%w: decode response: %w", domain.ErrTransportFailure, err)
	}
	if strings.TrimSpace(receipt.ApplicationID) == "" {
		return domain.SubmissionReceipt{}, fmt.Errorf("%w: %w", domain.ErrTransportFailure, errMissingApplicationID)
	}
	return receipt, nil
}
