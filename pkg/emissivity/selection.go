// Package emissivity sums line emissivities over a selection of
// upper/lower level pairs (spec section 4.4) and parses the comma-
// separated selection-string format of spec section 3.
//
// Split out from the summing logic the way the teacher separates
// pkg/netlist (grammar parsing) from pkg/circuit/pkg/device (semantics):
// a small parser with its own type and its own tests.
package emissivity

import "strconv"

// Pair is one lower/upper level index pair (1-based) from a selection
// string, e.g. "1,2" names the 2->1 transition.
type Pair struct {
	Lower, Upper int
}

// ParseSelection parses a comma-separated, "/"-terminated selection
// string such as "1,2,1,3/" into transition pairs (2->1 and 3->1 here),
// per spec section 3. Tokens are grouped two at a time as (lower, upper),
// in order, and a trailing odd token is dropped silently. A character
// other than a digit, ',' or '/' discards only the digits read so far in
// the current token; the group it belonged to is not dropped as a whole,
// so the tokens after it are paired from where the discarded one left off.
func ParseSelection(s string) []Pair {
	var nums []int
	cur := ""
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			cur += string(r)
		case r == ',' || r == '/':
			if cur != "" {
				if v, err := strconv.Atoi(cur); err == nil {
					nums = append(nums, v)
				}
				cur = ""
			}
		default:
			cur = ""
		}
	}
	if cur != "" {
		if v, err := strconv.Atoi(cur); err == nil {
			nums = append(nums, v)
		}
	}

	var pairs []Pair
	for i := 0; i+1 < len(nums); i += 2 {
		pairs = append(pairs, Pair{Lower: nums[i], Upper: nums[i+1]})
	}
	return pairs
}
