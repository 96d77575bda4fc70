package similarity

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Family holds the four similarity scores computed for one pair of strings.
// Sequence is the difflib edit-ratio rounded to two decimals; the other
// three are whole-number fuzzy ratios.
type Family struct {
	Sequence       float64 `json:"sequence_ratio" yaml:"sequenceratio"`
	Ratio          int     `json:"ratio" yaml:"ratio"`
	PartialRatio   int     `json:"partial_ratio" yaml:"partialratio"`
	TokenSortRatio int     `json:"token_sort_ratio" yaml:"tokensortratio"`
}

// Sum returns the total of the four scores
func (f Family) Sum() float64 {
	return f.Sequence + float64(f.Ratio) + float64(f.PartialRatio) + float64(f.TokenSortRatio)
}

// Compare computes the full metric family for a and b. The fuzzy ratio and
// partial ratio run on lower-cased text; the edit-ratio and token sort ratio
// run on the original text.
func Compare(a, b string) Family {
	lowerA := strings.ToLower(a)
	lowerB := strings.ToLower(b)

	return Family{
		Sequence:       SequenceRatio(a, b),
		Ratio:          Ratio(lowerA, lowerB),
		PartialRatio:   PartialRatio(lowerA, lowerB),
		TokenSortRatio: TokenSortRatio(a, b),
	}
}

// Comparable reports whether a field value carries real content. Empty values
// and placeholder sentinels such as "TBD" are not comparable.
func Comparable(value string, sentinels []string) bool {
	if value == "" {
		return false
	}
	for _, s := range sentinels {
		if value == s {
			return false
		}
	}
	return true
}

// SequenceRatio returns the difflib SequenceMatcher ratio of a and b as a
// percentage rounded to two decimals. Two empty strings are identical.
func SequenceRatio(a, b string) float64 {
	return Round2(matcher(a, b).Ratio() * 100)
}

// Ratio returns the whole-string similarity of a and b in [0,100]
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return percent(matcher(a, b).Ratio())
}

// PartialRatio returns the similarity of the shorter string against the best
// matching window of the longer one
func PartialRatio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	shortSeq := runeSeq(shorter)
	blocks := difflib.NewMatcher(shortSeq, runeSeq(longer)).GetMatchingBlocks()

	best := 0.0
	for _, block := range blocks {
		start := block.B - block.A
		if start < 0 {
			start = 0
		}
		end := start + len(shorter)
		if start > len(longer) {
			start = len(longer)
		}
		if end > len(longer) {
			end = len(longer)
		}

		r := difflib.NewMatcher(shortSeq, runeSeq(longer[start:end])).Ratio()
		if r > 0.995 {
			return 100
		}
		if r > best {
			best = r
		}
	}

	return percent(best)
}

// TokenSortRatio compares a and b after normalising them and sorting their
// whitespace-separated tokens, so reordered phrases still match
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(fullProcess(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// fullProcess drops the Latin-1 range U+0080..U+00FF, replaces everything
// that is not a letter, number or underscore with a space, then lower-cases
// and trims. Runes above U+00FF are kept.
func fullProcess(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x80 && r <= 0xFF:
			continue
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func matcher(a, b string) *difflib.SequenceMatcher {
	return difflib.NewMatcher(runeSeq([]rune(a)), runeSeq([]rune(b)))
}

// runeSeq splits text into one element per code point, which is the unit
// difflib aligns on
func runeSeq(runes []rune) []string {
	seq := make([]string, len(runes))
	for i, r := range runes {
		seq[i] = string(r)
	}
	return seq
}

// percent scales a ratio to [0,100] with round-half-to-even
func percent(ratio float64) int {
	return int(math.RoundToEven(ratio * 100))
}

// Round2 rounds v to two decimals from its exact decimal value, with exact
// ties going to the even digit
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
