package scoring

import (
	"fmt"
	"math"

	"cybertcm/internal/catalog"
	"cybertcm/internal/domain"
)

// Magnitude thresholds. Below the balance threshold the respondent gets the
// sentinel balanced code; at or above the critical threshold health level 3.
const (
	balanceThreshold  = 35.0
	criticalThreshold = 90.0
)

// threeItemDimensions have 3 constituent questions (raw sum in [3,15]);
// the remaining dimensions have 4 (raw sum in [4,20]).
var threeItemDimensions = map[string]bool{
	domain.DimCold:  true,
	domain.DimHeat:  true,
	domain.DimSolid: true,
	domain.DimDry:   true,
}

// axes are the four opposing dimension pairs. On an exact tie the left side
// wins; that asymmetry is inherited from the source instrument.
var axes = []struct {
	left, right string
	leftCode    string
	rightCode   string
	label       string
	leftBadge   string
	rightBadge  string
}{
	{domain.DimCold, domain.DimHeat, "C", "H", "温度", "❄️ 寒", "🔥 热"},
	{domain.DimVoid, domain.DimSolid, "V", "S", "能量", "☁️ 虚", "💎 实"},
	{domain.DimDry, domain.DimWet, "D", "W", "环境", "🌵 燥", "💧 湿"},
	{domain.DimQi, domain.DimBlood, "Q", "B", "通畅", "🌀 郁", "🩸 瘀"},
}

// ScoreEightfold runs the eight-principle engine over one answer map.
// Missing or garbled answers contribute zero and never abort the run;
// garbled ones are tallied in ParseWarnings.
func ScoreEightfold(answers AnswerSelection, cat *catalog.Eightfold) (*domain.EightfoldResult, error) {
	if cat == nil || len(cat.Questions) == 0 {
		return nil, catalog.ErrCatalogUnavailable
	}

	raw := make(map[string]int, len(domain.Dimensions))
	for _, dim := range domain.Dimensions {
		raw[dim] = 0
	}

	warnings := 0
	for _, q := range cat.Questions {
		ans, ok := answers[q.ID]
		if !ok || ans == "" {
			continue
		}
		points, ok := ParsePointValue(ans)
		if !ok {
			warnings++
			continue
		}
		raw[q.Dimension] += points
	}

	norm := make(map[string]float64, len(raw))
	for dim, sum := range raw {
		var n float64
		if threeItemDimensions[dim] {
			n = float64(sum-3) / 12 * 100
		} else {
			n = float64(sum-4) / 16 * 100
		}
		norm[dim] = clamp(n, 0, 100)
	}

	code := ""
	sumSquares := 0.0
	bars := make([]domain.EnergyBar, 0, len(axes))
	for _, ax := range axes {
		left, right := norm[ax.left], norm[ax.right]
		if left >= right {
			code += ax.leftCode
		} else {
			code += ax.rightCode
		}
		axisMax := math.Max(left, right)
		sumSquares += axisMax * axisMax
		bars = append(bars, domain.EnergyBar{
			Label: ax.label,
			Left:  ax.leftBadge,
			Right: ax.rightBadge,
			Value: right - left,
		})
	}

	magnitude := math.Sqrt(sumSquares)
	balanced, healthLevel := classifyMagnitude(magnitude)
	if balanced {
		code = domain.TypeCodeBalanced
	}

	profile := resolveProfile(cat, code)
	rarity := "R"
	if balanced {
		rarity = "SSR"
	}

	return &domain.EightfoldResult{
		TypeCode:       code,
		TypeName:       profile.Name,
		Rarity:         rarity,
		Balanced:       balanced,
		HealthLevel:    healthLevel,
		Magnitude:      math.Round(magnitude*10) / 10,
		Slogan:         profile.Slogan,
		Description:    profile.Description,
		FactorySetting: profile.FactorySetting,
		BugWarning:     splitGuide(profile.BugWarning),
		Teammate:       profile.Teammate,
		Radar:          norm,
		EnergyBars:     bars,
		ActionGuide: domain.ActionGuide{
			Keep:  splitGuide(profile.Keep),
			Stop:  splitGuide(profile.Stop),
			Start: splitGuide(profile.Start),
		},
		ParseWarnings: warnings,
	}, nil
}

// resolveProfile implements the three-way narrative lookup: found row,
// synthesized balanced row, or a "not catalogued" placeholder. A missing
// narrative table degrades the text, never the scoring.
func resolveProfile(cat *catalog.Eightfold, code string) domain.TypeProfile {
	if p, ok := cat.TypeByCode(code); ok {
		return p
	}

	base, ok := cat.FirstType()
	if !ok {
		base = domain.TypeProfile{}
	}
	base.Code = code
	if code == domain.TypeCodeBalanced {
		base.Name = "天选之子 (平和质)"
		base.Slogan = "阴阳平衡，六边形战士"
		base.Description = "你的身体处于完美的动态平衡中。"
	} else {
		base.Name = fmt.Sprintf("未收录 (%s)", code)
	}
	return base
}

// classifyMagnitude applies the tier rule: strictly below the balance
// threshold is balanced (level 1), at or above the critical threshold is
// level 3, everything between is level 2.
func classifyMagnitude(magnitude float64) (balanced bool, healthLevel int) {
	switch {
	case magnitude < balanceThreshold:
		return true, domain.HealthLevelGood
	case magnitude >= criticalThreshold:
		return false, domain.HealthLevelCritical
	default:
		return false, domain.HealthLevelSub
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
