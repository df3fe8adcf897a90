package resolver

import (
	"errors"
	"strconv"
	"strings"
)

// numberPattern matches a quantity written as digits or as a small English number word.
const numberPattern = `\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve`

// MaxQuantity is the largest count a single quantity phrase can order. Larger numbers are
// clamped to it.
const MaxQuantity = 99

var numberWords = map[string]int{
	"a": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

// parseQuantity converts a token matched by numberPattern (or the article "a") into an integer
// in [0, MaxQuantity].
func parseQuantity(token string) int {
	token = strings.ToLower(strings.TrimSpace(token))
	if n, ok := numberWords[token]; ok {
		return n
	}
	n, err := strconv.Atoi(token)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(token, "-") {
		return MaxQuantity
	}
	if err != nil || n < 0 {
		return 0
	}
	return min(n, MaxQuantity)
}
