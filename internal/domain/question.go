package domain

// Instrument A dimension tags. Three-item group: cold, heat, solid, dry.
// Four-item group: void, wet, qi, blood.
const (
	DimCold  = "cold"
	DimHeat  = "heat"
	DimVoid  = "void"
	DimSolid = "solid"
	DimDry   = "dry"
	DimWet   = "wet"
	DimQi    = "qi"
	DimBlood = "blood"
)

// Dimensions lists the eight instrument-A dimensions in canonical order.
// The radar vector stored for similarity search uses this same order.
var Dimensions = []string{DimCold, DimHeat, DimVoid, DimSolid, DimDry, DimWet, DimQi, DimBlood}

// Instrument B constitution categories (WJW nine-constitution model).
const (
	ConstQiXu   = "气虚质"
	ConstYangXu = "阳虚质"
	ConstYinXu  = "阴虚质"
	ConstTanShi = "痰湿质"
	ConstShiRe  = "湿热质"
	ConstXueYu  = "血瘀质"
	ConstQiYu   = "气郁质"
	ConstTeBing = "特禀质"
	ConstPingHe = "平和质"
)

// Constitutions lists the nine categories in declaration order. Primary-
// category ties resolve by this order, first seen wins.
var Constitutions = []string{
	ConstQiXu, ConstYangXu, ConstYinXu, ConstTanShi,
	ConstShiRe, ConstXueYu, ConstQiYu, ConstTeBing, ConstPingHe,
}

// QuestionItem is one catalog row. Immutable once loaded.
type QuestionItem struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Dimension string `json:"dimension"`
	Weight    int    `json:"weight,omitempty"`
}

// TypeProfile is one narrative row keyed by type code. The list-valued
// fields (BugWarning, Keep, Stop, Start) stay in their delimited source
// form; the scoring engine splits them.
type TypeProfile struct {
	Code           string `json:"type_code"`
	Name           string `json:"name"`
	Slogan         string `json:"slogan"`
	Description    string `json:"simple_description"`
	FactorySetting string `json:"factory_setting"`
	BugWarning     string `json:"bug_warning"`
	Teammate       string `json:"teammate_cp"`
	Keep           string `json:"keep"`
	Stop           string `json:"stop"`
	Start          string `json:"start"`
}
