package domain

import (
	"regexp"
	"strings"
)

// Condition is a Discogs media or sleeve grade.
type Condition string

// Grades on the Discogs scale, plus the sleeve-only values.
const (
	ConditionMint         Condition = "Mint (M)"
	ConditionNearMint     Condition = "Near Mint (NM or M-)"
	ConditionVeryGoodPlus Condition = "Very Good Plus (VG+)"
	ConditionVeryGood     Condition = "Very Good (VG)"
	ConditionGoodPlus     Condition = "Good Plus (G+)"
	ConditionGood         Condition = "Good (G)"
	ConditionFair         Condition = "Fair (F)"
	ConditionPoor         Condition = "Poor (P)"

	ConditionGeneric   Condition = "Generic"
	ConditionNotGraded Condition = "Not Graded"
	ConditionNoCover   Condition = "No Cover"

	ConditionUnknown Condition = ""
)

var conditionRanks = map[Condition]int{
	ConditionPoor:         1,
	ConditionFair:         2,
	ConditionGood:         3,
	ConditionGoodPlus:     4,
	ConditionVeryGood:     5,
	ConditionVeryGoodPlus: 6,
	ConditionNearMint:     7,
	ConditionMint:         8,
}

var conditionAliases = map[string]Condition{
	"m":                    ConditionMint,
	"mint":                 ConditionMint,
	"nm":                   ConditionNearMint,
	"m-":                   ConditionNearMint,
	"nm or m-":             ConditionNearMint,
	"near mint":            ConditionNearMint,
	"vg+":                  ConditionVeryGoodPlus,
	"very good plus":       ConditionVeryGoodPlus,
	"vg":                   ConditionVeryGood,
	"very good":            ConditionVeryGood,
	"g+":                   ConditionGoodPlus,
	"good plus":            ConditionGoodPlus,
	"g":                    ConditionGood,
	"good":                 ConditionGood,
	"f":                    ConditionFair,
	"fair":                 ConditionFair,
	"p":                    ConditionPoor,
	"poor":                 ConditionPoor,
	"generic":              ConditionGeneric,
	"not graded":           ConditionNotGraded,
	"no cover":             ConditionNoCover,
	strings.ToLower(string(ConditionMint)):         ConditionMint,
	strings.ToLower(string(ConditionNearMint)):     ConditionNearMint,
	strings.ToLower(string(ConditionVeryGoodPlus)): ConditionVeryGoodPlus,
	strings.ToLower(string(ConditionVeryGood)):     ConditionVeryGood,
	strings.ToLower(string(ConditionGoodPlus)):     ConditionGoodPlus,
	strings.ToLower(string(ConditionGood)):         ConditionGood,
	strings.ToLower(string(ConditionFair)):         ConditionFair,
	strings.ToLower(string(ConditionPoor)):         ConditionPoor,
}

// Longest alternatives first so "VG+" is not read as "VG".
var conditionAbbrevRe = regexp.MustCompile(`\((NM or M-|VG\+|G\+|VG|NM|M-|M|G|F|P)\)`)

// ParseCondition maps a grade name, abbreviation or a longer text containing
// "(ABBR)" to a Condition. Unrecognised input yields ConditionUnknown.
func ParseCondition(s string) Condition {
	norm := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if norm == "" {
		return ConditionUnknown
	}
	if c, ok := conditionAliases[norm]; ok {
		return c
	}
	if m := conditionAbbrevRe.FindStringSubmatch(s); m != nil {
		return conditionAliases[strings.ToLower(m[1])]
	}
	for _, c := range []Condition{ConditionNotGraded, ConditionNoCover, ConditionGeneric} {
		if strings.Contains(norm, strings.ToLower(string(c))) {
			return c
		}
	}
	return ConditionUnknown
}

// Valid reports whether c is a known grade or sleeve value.
func (c Condition) Valid() bool {
	if _, ok := conditionRanks[c]; ok {
		return true
	}
	return c == ConditionGeneric || c == ConditionNotGraded || c == ConditionNoCover
}

// Rank orders graded conditions from Poor (1) to Mint (8). Ungraded and
// unknown values rank 0.
func (c Condition) Rank() int {
	return conditionRanks[c]
}

// AtLeast reports whether c meets the minimum grade. An unknown minimum
// accepts everything; otherwise ungraded values never qualify.
func (c Condition) AtLeast(minimum Condition) bool {
	if minimum.Rank() == 0 {
		return true
	}
	return c.Rank() >= minimum.Rank()
}

// Short returns the abbreviation for graded conditions, or the full value.
// Near Mint shortens to "NM".
func (c Condition) Short() string {
	if m := conditionAbbrevRe.FindStringSubmatch(string(c)); m != nil {
		abbrev, _, _ := strings.Cut(m[1], " or ")
		return abbrev
	}
	if c == ConditionUnknown {
		return "-"
	}
	return string(c)
}
