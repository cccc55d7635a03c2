package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus represents the payment axis of an order.
// The fulfillment cascade never touches this axis; it is carried so the
// order aggregate round-trips through persistence without loss.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid means no payment has been captured.
	PaymentUnpaid

	// PaymentPaid means the payment was captured.
	PaymentPaid

	// PaymentRefunded means the captured payment was returned.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "UNKNOWN",
		PaymentUnpaid:   "UNPAID",
		PaymentPaid:     "PAID",
		PaymentRefunded: "REFUNDED",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentUnpaid:   "UNPAID",
		PaymentPaid:     "PAID",
		PaymentRefunded: "REFUNDED",
	}
}

// PaymentStatusFromString parses a payment status literal.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is one of the defined statuses.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the uppercase literal of the status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
