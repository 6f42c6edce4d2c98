package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cybertcm/internal/catalog"
	"cybertcm/internal/domain"
	"cybertcm/internal/repository"
	"cybertcm/internal/scoring"
)

var (
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrNoAnswers         = errors.New("submission carries no answers")
)

// ScoringService runs both questionnaire engines over a submission and
// persists the assembled record. Each run is a pure computation over the
// published catalog snapshot; the only shared state is the catalog cache.
type ScoringService struct {
	catalogs *catalog.Cache
	users    repository.UserRepository
	results  repository.ResultRepository
	logger   *zap.Logger
}

func NewScoringService(
	catalogs *catalog.Cache,
	users repository.UserRepository,
	results repository.ResultRepository,
	logger *zap.Logger,
) *ScoringService {
	return &ScoringService{
		catalogs: catalogs,
		users:    users,
		results:  results,
		logger:   logger,
	}
}

// Submit scores one respondent's answers. Either instrument's answers may
// be absent, producing a valid incomplete record; an unavailable catalog is
// the only hard failure.
func (s *ScoringService) Submit(
	ctx context.Context,
	nickname string,
	eightAnswers scoring.AnswerSelection,
	nineAnswers scoring.AnswerSelection,
) (domain.ResultRecord, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return domain.ResultRecord{}, ErrInvalidSubmission
	}
	if len(eightAnswers) == 0 && len(nineAnswers) == 0 {
		return domain.ResultRecord{}, ErrNoAnswers
	}

	bundle, err := s.catalogs.Current()
	if err != nil {
		return domain.ResultRecord{}, err
	}

	var eight *domain.EightfoldResult
	if len(eightAnswers) > 0 {
		eight, err = scoring.ScoreEightfold(eightAnswers, &bundle.Eightfold)
		if err != nil {
			return domain.ResultRecord{}, fmt.Errorf("score eightfold: %w", err)
		}
	}

	var nine *domain.NinefoldResult
	if len(nineAnswers) > 0 {
		nine, err = scoring.ScoreNinefold(nineAnswers, &bundle.Ninefold)
		if err != nil {
			return domain.ResultRecord{}, fmt.Errorf("score ninefold: %w", err)
		}
	}

	user, err := s.users.GetOrCreate(ctx, nickname)
	if err != nil {
		return domain.ResultRecord{}, fmt.Errorf("get or create user: %w", err)
	}

	record := scoring.Assemble(eight, nine, scoring.RawAnswerKeys(eightAnswers, nineAnswers))
	record.ID = uuid.NewString()
	record.UserID = user.ID
	record.Nickname = user.Nickname
	record.CreatedAt = time.Now().UTC()

	if err := s.results.Save(ctx, record); err != nil {
		return domain.ResultRecord{}, fmt.Errorf("save result: %w", err)
	}

	warnings := 0
	typeCode := ""
	if eight != nil {
		warnings += eight.ParseWarnings
		typeCode = eight.TypeCode
	}
	if nine != nil {
		warnings += nine.ParseWarnings
	}
	s.logger.Info("submission scored",
		zap.String("result_id", record.ID),
		zap.String("nickname", nickname),
		zap.String("type_code", typeCode),
		zap.Bool("complete", record.Complete),
		zap.Int("parse_warnings", warnings),
	)
	return record, nil
}

// Result fetches a stored record by id.
func (s *ScoringService) Result(ctx context.Context, id string) (domain.ResultRecord, error) {
	return s.results.GetByID(ctx, id)
}

// History lists a respondent's stored results, newest first.
func (s *ScoringService) History(ctx context.Context, nickname string) ([]domain.ResultSummary, error) {
	user, err := s.users.GetByNickname(ctx, strings.TrimSpace(nickname))
	if err != nil {
		return nil, err
	}
	return s.results.ListByUser(ctx, user.ID)
}

// Similar finds the nearest stored radar profiles to the given record.
func (s *ScoringService) Similar(ctx context.Context, id string, limit int) ([]domain.SimilarResult, error) {
	return s.results.FindSimilar(ctx, id, limit)
}
