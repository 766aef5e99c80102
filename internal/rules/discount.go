// =============================================================================
// Sales Order Report - Discount Rules
// =============================================================================
//
// This module computes the discount rate for a validated order row. The rule
// set is fixed and small; making it configurable is out of scope.
//
// RULES (additive, each independent):
//   - VIP customer   : customerId starts with "VIP-"        -> +0.10
//   - EU region      : region equals "EU" (upper-cased)     -> +0.05
//   - Bulk order     : units >= 100                         -> +0.07
//
// The summed rate is capped at 0.25. The current rules alone top out at
// 0.22, so the cap is unreachable today; it guards future rule additions
// and must stay.
//
// =============================================================================

package rules

import (
	"strings"

	"github.com/ginjaninja78/sales-order-report/internal/types"
)

// Rate thresholds and increments for the fixed rule set.
const (
	vipPrefix = "VIP-"
	euRegion  = "EU"

	bulkUnitsThreshold = 100

	vipRate  = 0.10
	euRate   = 0.05
	bulkRate = 0.07

	// MaxRate is the cap applied to the summed discount rate.
	MaxRate = 0.25
)

// Discount returns the discount rate for a row, in [0, MaxRate].
// It is a pure function of the row: no state, no side effects.
func Discount(row types.OrderRow) float64 {
	rate := 0.0

	if strings.HasPrefix(row.CustomerID, vipPrefix) {
		rate += vipRate
	}
	if row.Region == euRegion {
		rate += euRate
	}
	if row.Units >= bulkUnitsThreshold {
		rate += bulkRate
	}

	if rate > MaxRate {
		rate = MaxRate
	}
	return rate
}
