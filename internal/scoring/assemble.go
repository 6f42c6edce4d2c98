package scoring

import (
	"fmt"

	"cybertcm/internal/domain"
)

// Assemble merges the two engine fragments into one ResultRecord. Pure
// structural composition: no further computation happens here. Either
// fragment may be nil, producing a valid but incomplete record; identity
// fields (ID, UserID, CreatedAt) are the caller's responsibility.
func Assemble(eight *domain.EightfoldResult, nine *domain.NinefoldResult, rawAnswers map[string]string) domain.ResultRecord {
	return domain.ResultRecord{
		Eightfold:  eight,
		Ninefold:   nine,
		Complete:   eight != nil && nine != nil,
		RawAnswers: rawAnswers,
	}
}

// RawAnswerKeys flattens both instruments' selections into the storage key
// scheme: q_<id> for instrument A, wjw_q_<id> for instrument B.
func RawAnswerKeys(eight, nine AnswerSelection) map[string]string {
	raw := make(map[string]string, len(eight)+len(nine))
	for id, ans := range eight {
		raw[fmt.Sprintf("q_%d", id)] = ans
	}
	for id, ans := range nine {
		raw[fmt.Sprintf("wjw_q_%d", id)] = ans
	}
	return raw
}
