package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"cybertcm/internal/domain"
	"cybertcm/internal/repository"
)

// ExportService writes stored results as CSV for offline analysis.
type ExportService struct {
	results repository.ResultRepository
	users   repository.UserRepository
}

func NewExportService(results repository.ResultRepository, users repository.UserRepository) *ExportService {
	return &ExportService{results: results, users: users}
}

var resultHeader = []string{
	"id", "nickname", "type_code", "type_name",
	"main_constitution", "main_score", "created_at",
}

func (s *ExportService) WriteResultsCSV(ctx context.Context, w io.Writer, filter repository.ResultFilter) error {
	summaries, err := s.results.Search(ctx, filter)
	if err != nil {
		return fmt.Errorf("search results: %w", err)
	}
	return writeResultRows(w, summaries)
}

func writeResultRows(w io.Writer, summaries []domain.ResultSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			s.ID,
			s.Nickname,
			s.TypeCode,
			s.TypeName,
			s.Primary,
			strconv.Itoa(s.PrimaryScore),
			s.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ExportService) WriteUsersCSV(ctx context.Context, w io.Writer) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "nickname", "created_at", "result_count"}); err != nil {
		return err
	}
	for _, u := range users {
		row := []string{
			u.ID,
			u.Nickname,
			u.CreatedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(u.ResultCount),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
