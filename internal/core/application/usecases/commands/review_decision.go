package commands

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ReviewDecision is the outcome an admin hands to a pending principal —
// a shop awaiting verification or a shipper awaiting approval. Modeling
// both reviews over one decision type keeps the two gates structurally
// identical instead of duplicating near-identical approve/reject pairs.
type ReviewDecision int

const (
	// ReviewDecisionUnknown represents an invalid or undefined decision.
	ReviewDecisionUnknown ReviewDecision = iota

	// ReviewDecisionApprove accepts the pending principal.
	ReviewDecisionApprove

	// ReviewDecisionReject declines the pending principal and triggers its
	// compensating transitions.
	ReviewDecisionReject
)

func getReviewDecisionStrings() map[ReviewDecision]string {
	return map[ReviewDecision]string{
		ReviewDecisionUnknown: "UNKNOWN",
		ReviewDecisionApprove: "APPROVE",
		ReviewDecisionReject:  "REJECT",
	}
}

// Validate checks if the ReviewDecision value is one of the defined decisions.
func (d ReviewDecision) Validate() error {
	if d != ReviewDecisionApprove && d != ReviewDecisionReject {
		return errs.NewValueIsInvalidErrorWithCause("review decision is invalid",
			fmt.Errorf("%d is not a valid review decision", d))
	}
	return nil
}

// String returns the uppercase literal of the decision.
func (d ReviewDecision) String() string {
	if str, ok := getReviewDecisionStrings()[d]; ok {
		return str
	}
	return "UNKNOWN"
}
