package service

import (
	"fmt"
	"time"

	"github.com/gizemabali/retaildiscountsapi/internal/clock"
	"github.com/gizemabali/retaildiscountsapi/internal/domain"
)

// tenureThresholdMillis is the account age beyond which a plain customer
// earns the 5% tier. Kept as the exact millisecond literal the pricing rules
// are defined with; it is not calendar-aware.
const tenureThresholdMillis = 63113904000

// DiscountedOtherTotal applies at most one percentage tier to the non-grocery
// total. Employee beats affiliate beats long-tenure customer; integer
// arithmetic floors toward zero.
func DiscountedOtherTotal(user domain.UserDetails, otherTotal int64, clk clock.Clock) (int64, error) {
	if user.Employee {
		return otherTotal * 70 / 100, nil
	}
	if user.Affiliate {
		return otherTotal * 90 / 100, nil
	}
	if user.Customer {
		created, err := clock.Parse(user.AccountCreationDate)
		if err != nil {
			return 0, fmt.Errorf("parse accountCreationDate: %w", err)
		}
		if clk.Now().Sub(created) > tenureThresholdMillis*time.Millisecond {
			return otherTotal * 95 / 100, nil
		}
	}
	return otherTotal, nil
}

// FinalTotal combines the grocery total with the tier-discounted other total
// and subtracts the flat rebate: 5 per complete 100 on the bill.
func FinalTotal(groceriesTotal, discountedOtherTotal int64) int64 {
	total := groceriesTotal + discountedOtherTotal
	return total - (total/100)*5
}
