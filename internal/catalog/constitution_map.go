package catalog

import (
	"fmt"

	"cybertcm/internal/domain"
)

// ConstitutionItems maps each nine-constitution category to the ordered
// ids of its constituent instrument-B questions. The numbering follows the
// WJW 33-item questionnaire; ValidateConstitutionItems checks it against
// the loaded catalog so a mismatch fails at load time, not scoring time.
var ConstitutionItems = map[string][]int{
	domain.ConstQiXu:   {2, 3, 4, 14},
	domain.ConstYangXu: {11, 12, 13, 29},
	domain.ConstYinXu:  {10, 21, 26, 31},
	domain.ConstTanShi: {9, 16, 28, 32},
	domain.ConstShiRe:  {23, 25, 27, 30},
	domain.ConstXueYu:  {19, 22, 24, 33},
	domain.ConstQiYu:   {5, 6, 7, 8},
	domain.ConstTeBing: {15, 17, 18, 20},
	domain.ConstPingHe: {1, 2, 4, 5, 13},
}

// BalancedReverseItems are the 平和质 questions scored as 6 - points.
var BalancedReverseItems = map[int]bool{2: true, 4: true, 5: true, 13: true}

// ValidateConstitutionItems asserts that every mapped question id exists in
// the loaded instrument-B catalog.
func ValidateConstitutionItems(c *Ninefold) error {
	for _, category := range domain.Constitutions {
		for _, id := range ConstitutionItems[category] {
			if !c.HasQuestion(id) {
				return fmt.Errorf("constitution %s references question %d not present in catalog", category, id)
			}
		}
	}
	return nil
}
