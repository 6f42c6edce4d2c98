package scoring

import (
	"testing"

	"cybertcm/internal/catalog"
)

func TestAssembleCompleteness(t *testing.T) {
	bundle := catalog.DefaultBundle()
	eight, err := ScoreEightfold(uniformAnswers(&bundle.Eightfold, 3), &bundle.Eightfold)
	if err != nil {
		t.Fatalf("score eightfold: %v", err)
	}
	nine, err := ScoreNinefold(AnswerSelection{1: "A (5分)"}, &bundle.Ninefold)
	if err != nil {
		t.Fatalf("score ninefold: %v", err)
	}

	record := Assemble(eight, nine, nil)
	if !record.Complete {
		t.Fatalf("both fragments present, record should be complete")
	}

	partial := Assemble(eight, nil, nil)
	if partial.Complete {
		t.Fatalf("single fragment must yield an incomplete record")
	}
	if partial.Eightfold == nil || partial.Ninefold != nil {
		t.Fatalf("partial record fragments wrong: %+v", partial)
	}
}

func TestRawAnswerKeys(t *testing.T) {
	raw := RawAnswerKeys(
		AnswerSelection{1: "A (5分)", 12: "B (3分)"},
		AnswerSelection{1: "C (1分)"},
	)
	if len(raw) != 3 {
		t.Fatalf("got %d raw answers, want 3", len(raw))
	}
	if raw["q_1"] != "A (5分)" || raw["q_12"] != "B (3分)" || raw["wjw_q_1"] != "C (1分)" {
		t.Fatalf("unexpected raw answer keys: %v", raw)
	}
}
