package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/google/uuid"
)

// CartTokenHeader carries the opaque cart session token on public requests.
const CartTokenHeader = "X-Cart-Token"

// CartTokenFromRequest extracts and validates the cart token header.
func CartTokenFromRequest(r *http.Request) (string, error) {
	token := strings.TrimSpace(r.Header.Get(CartTokenHeader))
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "missing cart token").
			WithDetails(map[string]string{CartTokenHeader: "is required"})
	}
	if _, err := uuid.Parse(token); err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid cart token").
			WithDetails(map[string]string{CartTokenHeader: "must be a valid token"})
	}
	return token, nil
}
