package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/slack-go/slack"
)

// maxBodyBytes caps slash command and webhook bodies before they are hashed.
const maxBodyBytes = 256 << 10

var errBadSignature = errors.New("invalid request signature")

// verifyRequest checks the Slack signing-secret headers against the raw body and
// restores the body so it can be parsed again.
func verifyRequest(w http.ResponseWriter, r *http.Request, signingSecret string) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, signingSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadSignature, err)
	}

	if _, err := verifier.Write(body); err != nil {
		return nil, fmt.Errorf("failed to hash body: %w", err)
	}

	if err := verifier.Ensure(); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadSignature, err)
	}

	return body, nil
}

func verifyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, errBadSignature) {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}
