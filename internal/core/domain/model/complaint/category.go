package complaint

import (
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
)

// Category classifies a complaint and determines its SLA deadline.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryDelivery covers lost, late, or damaged shipments.
	CategoryDelivery

	// CategoryProduct covers product quality and description mismatches.
	CategoryProduct

	// CategoryPayment covers charge and refund issues.
	CategoryPayment

	// CategorySeller covers seller conduct.
	CategorySeller

	// CategoryOther covers everything else.
	CategoryOther
)

// DefaultSLA is the response deadline applied when a category carries no
// specific SLA. Keep this as the single documented default; it must not be
// duplicated elsewhere.
const DefaultSLA = 72 * time.Hour

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:  "UNKNOWN",
		CategoryDelivery: "DELIVERY",
		CategoryProduct:  "PRODUCT",
		CategoryPayment:  "PAYMENT",
		CategorySeller:   "SELLER",
		CategoryOther:    "OTHER",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryDelivery: "DELIVERY",
		CategoryProduct:  "PRODUCT",
		CategoryPayment:  "PAYMENT",
		CategorySeller:   "SELLER",
		CategoryOther:    "OTHER",
	}
}

// getCategorySLAs maps categories to their response deadlines.
// Categories absent from the map fall back to DefaultSLA.
func getCategorySLAs() map[Category]time.Duration {
	return map[Category]time.Duration{
		CategoryDelivery: 24 * time.Hour,
		CategoryProduct:  48 * time.Hour,
		CategoryPayment:  24 * time.Hour,
		CategorySeller:   48 * time.Hour,
	}
}

// CategoryFromString parses a category literal.
// An unrecognized literal is an error; the SLA default applies only to valid
// categories without a specific deadline, never to unparseable input.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category is invalid",
		fmt.Errorf("%q is not a valid complaint category", s))
}

// Validate checks if the Category value is one of the defined categories.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid complaint category", c))
	}
	return nil
}

// String returns the uppercase literal of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// SLA returns the response deadline for the category, falling back to
// DefaultSLA when no specific deadline is configured.
func (c Category) SLA() time.Duration {
	if sla, ok := getCategorySLAs()[c]; ok {
		return sla
	}
	return DefaultSLA
}
