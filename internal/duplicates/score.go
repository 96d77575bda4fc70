package duplicates

import (
	"github.com/lehigh-university-libraries/dupeval/internal/similarity"
)

// componentCount is the number of scores averaged into a likelihood:
// one edit-ratio and three fuzzy ratios for names and again for descriptions
const componentCount = 8

// Scores holds the component metrics and combined likelihood for one pair
type Scores struct {
	Names        similarity.Family `json:"names" yaml:"names"`
	Descriptions similarity.Family `json:"descriptions" yaml:"descriptions"`
	Likelihood   float64           `json:"likelihood" yaml:"likelihood"`
}

// Calculator scores name and description pairs
type Calculator struct {
	sentinels []string
}

// NewCalculator creates a calculator that treats the given values as
// placeholder descriptions
func NewCalculator(sentinels []string) *Calculator {
	return &Calculator{sentinels: append([]string(nil), sentinels...)}
}

// Score compares two names and two descriptions. Description scores are all
// zero when either description is empty or a placeholder, which pulls the
// likelihood down rather than excluding the pair.
func (c *Calculator) Score(name1, name2, desc1, desc2 string) Scores {
	scores := Scores{
		Names: similarity.Compare(name1, name2),
	}

	if similarity.Comparable(desc1, c.sentinels) && similarity.Comparable(desc2, c.sentinels) {
		scores.Descriptions = similarity.Compare(desc1, desc2)
	}

	scores.Likelihood = Likelihood(scores.Names, scores.Descriptions)
	return scores
}

// Likelihood returns the unweighted mean of the eight component scores,
// rounded to two decimals
func Likelihood(names, descriptions similarity.Family) float64 {
	mean := (names.Sum() + descriptions.Sum()) / componentCount
	return similarity.Round2(mean)
}
