package domain

import "time"

// TypeCodeBalanced is the sentinel code assigned when the overall magnitude
// falls below the balance threshold.
const TypeCodeBalanced = "SSR"

// Health levels derived from magnitude.
const (
	HealthLevelGood     = 1
	HealthLevelSub      = 2
	HealthLevelCritical = 3
)

// EnergyBar is one bidirectional axis bar, Value = right - left in [-100,100].
type EnergyBar struct {
	Label string  `json:"label"`
	Left  string  `json:"left"`
	Right string  `json:"right"`
	Value float64 `json:"val"`
}

// ActionGuide holds the keep/stop/start recommendation lists.
type ActionGuide struct {
	Keep  []string `json:"keep"`
	Stop  []string `json:"stop"`
	Start []string `json:"start"`
}

// EightfoldResult is the instrument-A scoring fragment.
type EightfoldResult struct {
	TypeCode       string             `json:"type_code"`
	TypeName       string             `json:"type_name"`
	Rarity         string             `json:"rarity"`
	Balanced       bool               `json:"is_ssr"`
	HealthLevel    int                `json:"health_level"`
	Magnitude      float64            `json:"magnitude"`
	Slogan         string             `json:"slogan"`
	Description    string             `json:"simple_description"`
	FactorySetting string             `json:"factory_setting"`
	BugWarning     []string           `json:"bug_warning"`
	Teammate       string             `json:"teammate"`
	Radar          map[string]float64 `json:"radar_chart"`
	EnergyBars     []EnergyBar        `json:"energy_bars"`
	ActionGuide    ActionGuide        `json:"action_guide"`
	ParseWarnings  int                `json:"parse_warnings,omitempty"`
}

// CategoryVerdict is one nine-constitution category outcome.
type CategoryVerdict struct {
	Score   int    `json:"score"`
	Verdict string `json:"result"`
}

// NinefoldResult is the instrument-B scoring fragment.
type NinefoldResult struct {
	Scores         map[string]int             `json:"constitution_scores"`
	Verdicts       map[string]CategoryVerdict `json:"constitution_results"`
	Primary        string                     `json:"main_constitution"`
	PrimaryScore   int                        `json:"main_score"`
	PrimaryVerdict string                     `json:"main_result"`
	ParseWarnings  int                        `json:"parse_warnings,omitempty"`
}

// ResultRecord is the assembled output of both engines. Immutable after
// assembly; the persistence layer stores it verbatim. A record with only
// one fragment present is a valid intermediate, flagged via Complete.
type ResultRecord struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Nickname   string            `json:"nickname,omitempty"`
	Eightfold  *EightfoldResult  `json:"eightfold,omitempty"`
	Ninefold   *NinefoldResult   `json:"ninefold,omitempty"`
	Complete   bool              `json:"complete"`
	RawAnswers map[string]string `json:"raw_answers,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ResultSummary is the listing/search projection of a stored record.
type ResultSummary struct {
	ID           string    `json:"id"`
	Nickname     string    `json:"nickname"`
	TypeCode     string    `json:"type_code"`
	TypeName     string    `json:"type_name"`
	Primary      string    `json:"main_constitution,omitempty"`
	PrimaryScore int       `json:"main_score,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SimilarResult is one neighbour from the radar-vector similarity search.
type SimilarResult struct {
	ID       string  `json:"id"`
	Nickname string  `json:"nickname"`
	TypeCode string  `json:"type_code"`
	TypeName string  `json:"type_name"`
	Distance float64 `json:"distance"`
}
