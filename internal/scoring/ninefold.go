package scoring

import (
	"cybertcm/internal/catalog"
	"cybertcm/internal/domain"
)

// Verdict values follow the WJW wording.
const (
	VerdictYes     = "是"
	VerdictLeaning = "倾向是"
	VerdictLargely = "基本是"
	VerdictNo      = "否"
)

// Category thresholds: >=11 affirmative, 9..10 leaning, <=8 negative.
// 平和质 uses its own cross-category rule instead.
const (
	affirmativeMin = 11
	leaningMin     = 9

	balancedOwnMin   = 17
	balancedOtherMax = 8
	largelyOtherMax  = 10
)

// ScoreNinefold runs the nine-constitution engine over one answer map.
// Category membership and reverse-scored items come from the static
// catalog map, which the loader validates against the published catalog.
func ScoreNinefold(answers AnswerSelection, cat *catalog.Ninefold) (*domain.NinefoldResult, error) {
	if cat == nil || len(cat.Questions) == 0 {
		return nil, catalog.ErrCatalogUnavailable
	}

	warnings := 0
	scores := make(map[string]int, len(domain.Constitutions))
	for _, category := range domain.Constitutions {
		total := 0
		for _, qid := range catalog.ConstitutionItems[category] {
			ans, ok := answers[qid]
			if !ok || ans == "" {
				continue
			}
			points, ok := ParsePointValue(ans)
			if !ok {
				warnings++
				continue
			}
			// 平和质 items phrased with opposite polarity score 6 - points.
			if category == domain.ConstPingHe && catalog.BalancedReverseItems[qid] {
				points = 6 - points
			}
			total += points
		}
		scores[category] = total
	}

	verdicts := make(map[string]domain.CategoryVerdict, len(scores))
	for _, category := range domain.Constitutions {
		if category == domain.ConstPingHe {
			continue
		}
		score := scores[category]
		verdicts[category] = domain.CategoryVerdict{Score: score, Verdict: plainVerdict(score)}
	}
	verdicts[domain.ConstPingHe] = balancedVerdict(scores)

	primary, primaryScore := primaryCategory(scores)
	return &domain.NinefoldResult{
		Scores:         scores,
		Verdicts:       verdicts,
		Primary:        primary,
		PrimaryScore:   primaryScore,
		PrimaryVerdict: verdicts[primary].Verdict,
		ParseWarnings:  warnings,
	}, nil
}

func plainVerdict(score int) string {
	switch {
	case score >= affirmativeMin:
		return VerdictYes
	case score >= leaningMin:
		return VerdictLeaning
	default:
		return VerdictNo
	}
}

// balancedVerdict gates 平和质 on every other category staying low.
func balancedVerdict(scores map[string]int) domain.CategoryVerdict {
	own := scores[domain.ConstPingHe]
	allBelow := func(limit int) bool {
		for _, category := range domain.Constitutions {
			if category == domain.ConstPingHe {
				continue
			}
			if scores[category] > limit {
				return false
			}
		}
		return true
	}

	verdict := VerdictNo
	if own >= balancedOwnMin && allBelow(balancedOtherMax) {
		verdict = VerdictYes
	} else if own >= balancedOwnMin && allBelow(largelyOtherMax) {
		verdict = VerdictLargely
	}
	return domain.CategoryVerdict{Score: own, Verdict: verdict}
}

// primaryCategory picks the highest-scoring non-balanced category, ties
// resolved by declaration order. With every non-balanced sum at zero the
// balanced category's own result stands in.
func primaryCategory(scores map[string]int) (string, int) {
	best := ""
	bestScore := -1
	for _, category := range domain.Constitutions {
		if category == domain.ConstPingHe {
			continue
		}
		if scores[category] > bestScore {
			best = category
			bestScore = scores[category]
		}
	}
	if best == "" || bestScore <= 0 {
		return domain.ConstPingHe, scores[domain.ConstPingHe]
	}
	return best, bestScore
}
