package checkout

import (
	"strings"

	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	minNameLength    = 2
	minPhoneLength   = 10
	maxPhoneLength   = 15
	minAddressLength = 10
)

// validateInput applies the checkout form rules and collects every failure
// into a field keyed details map so the client can render them inline.
func validateInput(input Input) (enums.Fulfillment, enums.PaymentMethod, error) {
	details := map[string]string{}

	if len(strings.TrimSpace(input.CustomerName)) < minNameLength {
		details["customer_name"] = "must be at least 2 characters"
	}

	phone := strings.TrimSpace(input.Phone)
	if len(phone) < minPhoneLength || len(phone) > maxPhoneLength {
		details["phone"] = "must be between 10 and 15 characters"
	}

	fulfillment, err := enums.ParseFulfillment(input.Fulfillment)
	if err != nil {
		details["fulfillment"] = "must be pickup or delivery"
	}

	if fulfillment == enums.FulfillmentDelivery {
		if input.Address == nil || len(strings.TrimSpace(*input.Address)) < minAddressLength {
			details["address"] = "must be at least 10 characters for delivery"
		}
	}

	payment, err := enums.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		details["payment_method"] = "must be pix, card, or cash"
	}

	if input.ChangeFor != nil {
		if payment != enums.PaymentMethodCash {
			details["change_for"] = "only applies to cash payments"
		} else if amount, err := decimal.NewFromString(strings.TrimSpace(*input.ChangeFor)); err != nil || amount.IsNegative() {
			details["change_for"] = "must be a valid amount"
		}
	}

	if len(details) > 0 {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation, "checkout payload is invalid").
			WithDetails(details)
	}
	return fulfillment, payment, nil
}
