package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"cybertcm/internal/domain"
)

// Loader produces a fully-built catalog bundle.
type Loader interface {
	Load() (*Bundle, error)
}

// ExcelLoader reads the instrument-A workbook (sheets Questions and Types)
// and the instrument-B workbook (sheet Questions). When a workbook cannot
// be opened the embedded default catalog for that instrument is used.
type ExcelLoader struct {
	EightfoldPath string
	NinefoldPath  string
	Logger        *zap.Logger
}

func (l ExcelLoader) Load() (*Bundle, error) {
	bundle := &Bundle{}

	if eight, err := l.loadEightfold(); err != nil {
		l.warn("eightfold catalog fallback", err)
		bundle.Eightfold = NewEightfold(defaultEightfoldQuestions(), defaultTypeProfiles())
	} else {
		bundle.Eightfold = *eight
	}

	if nine, err := l.loadNinefold(); err != nil {
		l.warn("ninefold catalog fallback", err)
		bundle.Ninefold = Ninefold{Questions: defaultNinefoldQuestions()}
	} else {
		bundle.Ninefold = *nine
	}

	return bundle, nil
}

func (l ExcelLoader) warn(msg string, err error) {
	if l.Logger != nil {
		l.Logger.Warn(msg, zap.Error(err))
	}
}

func (l ExcelLoader) loadEightfold() (*Eightfold, error) {
	f, err := excelize.OpenFile(l.EightfoldPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	questions, err := readQuestionRows(f, "Questions")
	if err != nil {
		return nil, err
	}
	types, err := readTypeRows(f, "Types")
	if err != nil {
		return nil, err
	}

	cat := NewEightfold(questions, types)
	return &cat, nil
}

func (l ExcelLoader) loadNinefold() (*Ninefold, error) {
	f, err := excelize.OpenFile(l.NinefoldPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	questions, err := readQuestionRows(f, "Questions")
	if err != nil {
		return nil, err
	}
	return &Ninefold{Questions: questions}, nil
}

func readQuestionRows(f *excelize.File, sheet string) ([]domain.QuestionItem, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheet)
	}

	cols := headerIndex(rows[0])
	var items []domain.QuestionItem
	for _, row := range rows[1:] {
		id, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.at("id"))))
		if err != nil {
			// Rows without a numeric id are headers or notes, not questions.
			continue
		}
		item := domain.QuestionItem{
			ID:        id,
			Text:      strings.TrimSpace(cell(row, cols.at("question"))),
			Dimension: strings.TrimSpace(cell(row, cols.at("dimension"))),
		}
		if w, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.at("weight")))); err == nil {
			item.Weight = w
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("sheet %s contains no questions", sheet)
	}
	return items, nil
}

func readTypeRows(f *excelize.File, sheet string) ([]domain.TypeProfile, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheet)
	}

	cols := headerIndex(rows[0])
	var types []domain.TypeProfile
	for _, row := range rows[1:] {
		tp := domain.TypeProfile{
			Code:           strings.TrimSpace(cell(row, cols.at("type_code"))),
			Name:           cell(row, cols.at("name")),
			Slogan:         cell(row, cols.at("slogan")),
			Description:    cell(row, cols.at("simple_description")),
			FactorySetting: cell(row, cols.at("factory_setting")),
			BugWarning:     cell(row, cols.at("bug_warning")),
			Teammate:       cell(row, cols.at("teammate_cp")),
			Keep:           cell(row, cols.at("keep")),
			Stop:           cell(row, cols.at("stop")),
			Start:          cell(row, cols.at("start")),
		}
		if tp.Code == "" {
			continue
		}
		types = append(types, tp)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("sheet %s contains no type rows", sheet)
	}
	return types, nil
}

type columnIndex map[string]int

func headerIndex(header []string) columnIndex {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// at returns -1 for absent columns so cell() yields an empty string.
func (c columnIndex) at(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
