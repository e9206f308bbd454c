package versioning

import (
	"fmt"
	"math/big"
	"strings"
)

// Initial is the label reported for a dataset without versions
const Initial = "0"

// Next returns the label that follows label. Separators are stripped, the
// remaining digits are read as one base-10 integer, incremented, and written
// back with a dot between every digit: "1.2" becomes "1.3", "9" becomes "1.0",
// "1.9" becomes "2.0". The digit count grows on overflow and is not bounded
// by any integer width.
func Next(label string) (string, error) {
	digits := strings.ReplaceAll(label, ".", "")
	if digits == "" {
		return "", fmt.Errorf("version label %q has no digits", label)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("version label %q is not a dotted digit sequence", label)
		}
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "", fmt.Errorf("parse version label %q", label)
	}

	next := n.Add(n, big.NewInt(1)).String()
	return strings.Join(strings.Split(next, ""), "."), nil
}
