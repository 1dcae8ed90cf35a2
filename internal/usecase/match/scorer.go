package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

// educationHierarchy is ordered most-to-least advanced; a lower index
// means a more advanced degree.
var educationHierarchy = []string{
	"Doctorate",
	"Master's Degree",
	"Bachelor's Degree",
	"High School",
}

const criteriaCount = 7

var cmRe = regexp.MustCompile(`(\d+)\s*(?:cm)?`)

// Score computes the 0-100 compatibility of a candidate against the
// viewer's partner preferences. Seven criteria carry an equal share of
// 100/7 points each; per-field shares are not rounded, only the final
// sum. A criterion where either side is unset or unparseable simply
// contributes nothing; malformed data never aborts a scoring pass.
func Score(viewer domain.Profile, candidate domain.MatchCandidate, now time.Time) int {
	share := 100.0 / float64(criteriaCount)
	total := 0.0

	total += scoreCaste(domain.StringValue(viewer.ExpectedCaste), domain.StringValue(candidate.Caste), share)
	total += scoreCity(domain.StringValue(viewer.PreferredCity), domain.StringValue(candidate.CurrentCity), share)
	total += scoreEducation(domain.StringValue(viewer.ExpectedEducation), domain.StringValue(candidate.Education), share)
	total += scoreHeight(domain.StringValue(viewer.ExpectedHeight), domain.StringValue(candidate.Height), share)
	total += scoreIncome(domain.StringValue(viewer.ExpectedIncome), domain.StringValue(candidate.Income), share)
	total += scoreDivorcee(domain.StringValue(viewer.Divorcee), domain.StringValue(candidate.MaritalStatus), share)
	total += scoreAgeDifference(domain.StringValue(viewer.ExpectedAgeDifference), viewer.AgeAt(now), candidate.Age, share)

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// scoreEducation grants full credit when the candidate's degree ranks
// at or above the expectation, half credit below it, and nothing when
// either value is outside the known hierarchy.
func scoreEducation(expected, actual string, share float64) float64 {
	if expected == "" || actual == "" {
		return 0
	}
	expectedIdx := educationRank(expected)
	actualIdx := educationRank(actual)
	if expectedIdx < 0 || actualIdx < 0 {
		return 0
	}
	if actualIdx <= expectedIdx {
		return share
	}
	return share / 2
}

func educationRank(level string) int {
	for i, e := range educationHierarchy {
		if e == level {
			return i
		}
	}
	return -1
}

// scoreAgeDifference evaluates only the viewer's selected expectation
// code. The "1"/"2"/"3"/"5" thresholds overlap on purpose; no best-fit
// across codes is attempted.
func scoreAgeDifference(code string, viewerAge, candidateAge int, share float64) float64 {
	if code == "" || viewerAge < 0 || candidateAge < 0 {
		return 0
	}
	diff := viewerAge - candidateAge
	if diff < 0 {
		diff = -diff
	}
	matched := false
	switch code {
	case "1":
		matched = diff <= 1
	case "2":
		matched = diff <= 2
	case "3":
		matched = diff <= 3
	case "5":
		matched = diff <= 5
	case "6+":
		matched = diff >= 6
	}
	if matched {
		return share
	}
	return 0
}

// scoreHeight parses the candidate's height in centimeters and the
// expectation as either a range ("150-160 cm", en-dash accepted), an
// open-ended "180 cm & above", or a single value.
func scoreHeight(expected, actual string, share float64) float64 {
	if expected == "" || actual == "" {
		return 0
	}
	actualCm, ok := extractCm(actual)
	if !ok {
		return 0
	}

	var minCm, maxCm int
	switch {
	case strings.ContainsAny(expected, "-–"):
		parts := strings.FieldsFunc(expected, func(r rune) bool { return r == '-' || r == '–' })
		if len(parts) < 2 {
			return 0
		}
		lo, okLo := extractCm(parts[0])
		hi, okHi := extractCm(parts[1])
		if !okLo || !okHi {
			return 0
		}
		minCm, maxCm = lo, hi
	case strings.Contains(expected, "& above"):
		lo, okLo := extractCm(expected)
		if !okLo {
			return 0
		}
		minCm, maxCm = lo, math.MaxInt32
	default:
		v, okV := extractCm(expected)
		if !okV {
			return 0
		}
		minCm, maxCm = v, v
	}

	if actualCm >= minCm && actualCm <= maxCm {
		return share
	}
	return 0
}

func extractCm(s string) (int, bool) {
	m := cmRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

// scoreIncome is exact-match only: income brackets are categorical
// strings, not numbers.
func scoreIncome(expected, actual string, share float64) float64 {
	if expected == "" || actual == "" {
		return 0
	}
	if expected == actual {
		return share
	}
	return 0
}

func scoreCity(expected, actual string, share float64) float64 {
	if expected == "" || actual == "" {
		return 0
	}
	if SameCity(expected, actual) {
		return share
	}
	return 0
}

// scoreDivorcee: full credit when the viewer accepts divorcees or the
// candidate was never married.
func scoreDivorcee(accepts, maritalStatus string, share float64) float64 {
	if accepts == "" || maritalStatus == "" {
		return 0
	}
	if accepts == "yes" || maritalStatus == domain.MaritalUnmarried {
		return share
	}
	return 0
}

// scoreCaste: identical strings earn full credit outright. Otherwise
// both sides split on "-" into main/sub; differing mains earn nothing,
// matching mains with matching subs earn full credit, and matching
// mains with absent or differing subs earn half.
func scoreCaste(expected, actual string, share float64) float64 {
	if expected == "" || actual == "" {
		return 0
	}
	if expected == actual {
		return share
	}
	expMain, expSub := splitCaste(expected)
	actMain, actSub := splitCaste(actual)
	if expMain != actMain {
		return 0
	}
	if expSub != "" && actSub != "" && expSub == actSub {
		return share
	}
	return share / 2
}

func splitCaste(s string) (main, sub string) {
	parts := strings.SplitN(s, "-", 2)
	main = parts[0]
	if len(parts) == 2 {
		sub = parts[1]
	}
	return main, sub
}
