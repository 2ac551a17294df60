package css

import (
	"regexp"
	"strconv"
)

// Adjacent runs without separator collapse into one match keeping the last
// number and unit.
var lengthRe = regexp.MustCompile(`((\d+)(px|em))+`)

// ParseLength interprets text as one, two or four lengths. Two numbers are
// expanded as vertical, horizontal. Unit of the first number applies to all.
// Any other count of numbers is not a length.
func ParseLength(text string) (Length, bool) {
	matches := lengthRe.FindAllStringSubmatch(text, -1)

	nums := make([]int, 0, len(matches))
	for _, m := range matches {
		nums = append(nums, parseNum(m[2]))
	}
	if len(matches) == 0 {
		return Length{}, false
	}
	unit := parseUnit(matches[0][3])

	switch len(nums) {
	case 1:
		return Length{Value: SingleLength(nums[0]), Unit: unit}, true
	case 2:
		return Length{Value: AllLengths(nums[0], nums[1], nums[0], nums[1]), Unit: unit}, true
	case 4:
		return Length{Value: AllLengths(nums[0], nums[1], nums[2], nums[3]), Unit: unit}, true
	default:
		return Length{}, false
	}
}

func parseUnit(s string) Unit {
	if s == "em" {
		return UnitEm
	}
	return UnitPx
}

// parseNum returns 0 for numbers which do not fit.
func parseNum(s string) int {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}
