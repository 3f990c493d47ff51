package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"storefront/pkg/domain/model"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

type networkRule struct {
	network model.CardNetwork
	match   func(digits string) bool
}

// Rules are evaluated in this order, first match wins. The prefixes are
// mutually exclusive (503 does not fall in the mastercard 51-55 range),
// so the order is the documented priority, not a tie-breaker.
var networkRules = []networkRule{
	{model.Visa, func(d string) bool { return strings.HasPrefix(d, "4") }},
	{model.Mastercard, func(d string) bool {
		return len(d) >= 2 && d[0] == '5' && d[1] >= '1' && d[1] <= '5'
	}},
	{model.Amex, func(d string) bool {
		return strings.HasPrefix(d, "34") || strings.HasPrefix(d, "37")
	}},
	{model.MercadoPago, func(d string) bool { return strings.HasPrefix(d, "503") }},
}

// NormalizeCardNumber strips all whitespace from a card number as typed.
func NormalizeCardNumber(cardNumber string) string {
	var b strings.Builder
	for _, r := range cardNumber {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectCardNetwork classifies a card number by its prefix. Returns
// UnknownNetwork when no rule matches.
func DetectCardNetwork(cardNumber string) model.CardNetwork {
	digits := NormalizeCardNumber(cardNumber)
	for _, rule := range networkRules {
		if rule.match(digits) {
			return rule.network
		}
	}
	return model.UnknownNetwork
}

// ValidCardNumber reports whether the number passes the Luhn checksum.
// Any non-digit character after whitespace removal makes it invalid.
func ValidCardNumber(cardNumber string) bool {
	digits := NormalizeCardNumber(cardNumber)
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidExpiryDate checks an MM/YY expiry against now with whole-month
// granularity: a card expiring in the current month is still valid.
func ValidExpiryDate(expiry string, now time.Time) bool {
	m := expiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return false
	}

	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000

	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}

// validNetworkLength checks the digit count expected for the network:
// 15 for amex, 13 or 16 for visa, 16 for the rest.
func validNetworkLength(network model.CardNetwork, digits string) bool {
	switch network {
	case model.Amex:
		return len(digits) == 15
	case model.Visa:
		return len(digits) == 13 || len(digits) == 16
	default:
		return len(digits) == 16
	}
}
