package usecases

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var evmAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// isValidEVMAddress checks the 0x-prefixed 40-hex-char wallet format.
func isValidEVMAddress(addr string) bool {
	return evmAddressPattern.MatchString(addr)
}

func padLeft(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat("0", length-len(s)) + s
}

// parsePositiveAmount parses a decimal string and rejects zero, negative
// and non-numeric values.
func parsePositiveAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// toSmallestUnit converts a human token amount to its integer base-unit
// representation, truncating any sub-unit remainder.
func toSmallestUnit(amount float64, decimals int) *big.Int {
	multiplier := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	result := new(big.Float).Mul(new(big.Float).SetFloat64(amount), multiplier)
	out, _ := result.Int(nil)
	return out
}

// fromSmallestUnit converts an integer base-unit balance back to a
// human decimal string.
func fromSmallestUnit(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	divisor := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value := new(big.Float).SetPrec(236).SetInt(amount)
	return new(big.Float).Quo(value, divisor).Text('f', -1)
}
