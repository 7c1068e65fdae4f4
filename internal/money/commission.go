// Package money holds the settlement arithmetic. All amounts are int64 minor
// currency units (cents).
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDecimal is returned for amounts that are not plain decimal numbers
var ErrInvalidDecimal = errors.New("invalid decimal amount")

// PlatformFeePerMille is the platform's cut of gross order value, 2.5%.
const PlatformFeePerMille = 25

// SafeNumber maps NaN and ±Inf to 0
func SafeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ComputeCommission returns amount × rate / 100 rounded half away from zero.
// Non-finite intermediates and negative results yield 0.
func ComputeCommission(amount int64, ratePercent float64) int64 {
	c := math.Round(SafeNumber(float64(amount) * ratePercent / 100))
	if c <= 0 || c > math.MaxInt64 {
		return 0
	}
	return int64(c)
}

// ComputePlatformFee returns 2.5% of the gross amount, rounded half-up, in
// integer arithmetic. It does not depend on the commission rate. The amount is
// split at 1000 so the multiplication cannot overflow.
func ComputePlatformFee(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return amount/1000*PlatformFeePerMille + (amount%1000*PlatformFeePerMille+500)/1000
}

// ConversionRate returns conversions/clicks as a percentage, 0 when there are no clicks
func ConversionRate(conversions, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return SafeNumber(float64(conversions) / float64(clicks) * 100)
}

// ParseMajorUnits converts a decimal string in major units ("123.45") to
// minor units. Digits past the second decimal are rounded half-up.
func ParseMajorUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidDecimal
	}
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrInvalidDecimal
	}
	if whole == "" {
		whole = "0"
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, ErrInvalidDecimal
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > math.MaxInt64/100-1 {
		return 0, ErrInvalidDecimal
	}

	cents := int64(0)
	for i := 0; i < 2; i++ {
		cents *= 10
		if i < len(frac) {
			cents += int64(frac[i] - '0')
		}
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return total, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatMajorUnits renders minor units as a plain decimal, 1500 -> "15.00"
func FormatMajorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + strconv.FormatInt(amount/100, 10) + "." + fmt.Sprintf("%02d", amount%100)
}
