package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"cybertcm/internal/domain"
)

// ResultFilter narrows Search; zero-value fields are ignored.
type ResultFilter struct {
	Nickname string
	TypeCode string
	From     time.Time
	To       time.Time
}

// ResultRepository persists assembled result records verbatim.
type ResultRepository interface {
	Save(ctx context.Context, record domain.ResultRecord) error
	GetByID(ctx context.Context, id string) (domain.ResultRecord, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ResultSummary, error)
	Search(ctx context.Context, filter ResultFilter) ([]domain.ResultSummary, error)
	Stats(ctx context.Context) (domain.Statistics, error)
	FindSimilar(ctx context.Context, id string, limit int) ([]domain.SimilarResult, error)
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Save(ctx context.Context, record domain.ResultRecord) error {
	eightJSON, err := marshalFragment(record.Eightfold)
	if err != nil {
		return fmt.Errorf("marshal eightfold fragment: %w", err)
	}
	nineJSON, err := marshalFragment(record.Ninefold)
	if err != nil {
		return fmt.Errorf("marshal ninefold fragment: %w", err)
	}
	rawJSON, err := json.Marshal(record.RawAnswers)
	if err != nil {
		return fmt.Errorf("marshal raw answers: %w", err)
	}

	var (
		typeCode, typeName string
		radarVec           interface{}
		primary            string
		primaryScore       int
	)
	if record.Eightfold != nil {
		typeCode = record.Eightfold.TypeCode
		typeName = record.Eightfold.TypeName
		radarVec = pgvector.NewVector(radarVector(record.Eightfold.Radar))
	}
	if record.Ninefold != nil {
		primary = record.Ninefold.Primary
		primaryScore = record.Ninefold.PrimaryScore
	}

	const query = `
		INSERT INTO results (
			id, user_id, type_code, type_name, eightfold, ninefold,
			radar_vec, main_constitution, main_score, raw_answers, complete, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.UserID,
		typeCode,
		typeName,
		eightJSON,
		nineJSON,
		radarVec,
		primary,
		primaryScore,
		rawJSON,
		record.Complete,
		record.CreatedAt,
	)
	return err
}

func (r *PgResultRepository) GetByID(ctx context.Context, id string) (domain.ResultRecord, error) {
	const query = `
		SELECT res.id, res.user_id, u.nickname, res.eightfold, res.ninefold,
		       res.raw_answers, res.complete, res.created_at
		FROM results res
		JOIN users u ON u.id = res.user_id
		WHERE res.id = $1
	`
	var (
		record    domain.ResultRecord
		eightJSON []byte
		nineJSON  []byte
		rawJSON   []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.UserID,
		&record.Nickname,
		&eightJSON,
		&nineJSON,
		&rawJSON,
		&record.Complete,
		&record.CreatedAt,
	)
	if err != nil {
		return domain.ResultRecord{}, err
	}

	if len(eightJSON) > 0 {
		if err := json.Unmarshal(eightJSON, &record.Eightfold); err != nil {
			return domain.ResultRecord{}, fmt.Errorf("unmarshal eightfold fragment: %w", err)
		}
	}
	if len(nineJSON) > 0 {
		if err := json.Unmarshal(nineJSON, &record.Ninefold); err != nil {
			return domain.ResultRecord{}, fmt.Errorf("unmarshal ninefold fragment: %w", err)
		}
	}
	if len(rawJSON) > 0 {
		if err := json.Unmarshal(rawJSON, &record.RawAnswers); err != nil {
			return domain.ResultRecord{}, fmt.Errorf("unmarshal raw answers: %w", err)
		}
	}
	return record, nil
}

func (r *PgResultRepository) ListByUser(ctx context.Context, userID string) ([]domain.ResultSummary, error) {
	const query = `
		SELECT res.id, u.nickname, res.type_code, res.type_name,
		       res.main_constitution, res.main_score, res.created_at
		FROM results res
		JOIN users u ON u.id = res.user_id
		WHERE res.user_id = $1
		ORDER BY res.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (r *PgResultRepository) Search(ctx context.Context, filter ResultFilter) ([]domain.ResultSummary, error) {
	query := `
		SELECT res.id, u.nickname, res.type_code, res.type_name,
		       res.main_constitution, res.main_score, res.created_at
		FROM results res
		JOIN users u ON u.id = res.user_id
		WHERE 1=1
	`
	var args []interface{}
	if filter.Nickname != "" {
		args = append(args, "%"+filter.Nickname+"%")
		query += fmt.Sprintf(" AND u.nickname ILIKE $%d", len(args))
	}
	if filter.TypeCode != "" {
		args = append(args, filter.TypeCode)
		query += fmt.Sprintf(" AND res.type_code = $%d", len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND res.created_at >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND res.created_at <= $%d", len(args))
	}
	query += " ORDER BY res.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (r *PgResultRepository) Stats(ctx context.Context) (domain.Statistics, error) {
	var stats domain.Statistics

	const totalsQuery = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM results),
			(SELECT COUNT(*) FROM results WHERE created_at::date = CURRENT_DATE)
	`
	if err := r.pool.QueryRow(ctx, totalsQuery).Scan(
		&stats.TotalUsers,
		&stats.TotalResults,
		&stats.TodayCount,
	); err != nil {
		return domain.Statistics{}, err
	}

	const distQuery = `
		SELECT type_code, type_name, COUNT(*) AS cnt
		FROM results
		WHERE type_code <> ''
		GROUP BY type_code, type_name
		ORDER BY cnt DESC
	`
	rows, err := r.pool.Query(ctx, distQuery)
	if err != nil {
		return domain.Statistics{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var tc domain.TypeCount
		if err := rows.Scan(&tc.TypeCode, &tc.TypeName, &tc.Count); err != nil {
			return domain.Statistics{}, err
		}
		stats.TypeDistribution = append(stats.TypeDistribution, tc)
	}
	return stats, rows.Err()
}

func (r *PgResultRepository) FindSimilar(ctx context.Context, id string, limit int) ([]domain.SimilarResult, error) {
	if limit <= 0 {
		limit = 5
	}
	const query = `
		SELECT res.id, u.nickname, res.type_code, res.type_name,
		       res.radar_vec <-> ref.radar_vec AS distance
		FROM results res
		JOIN users u ON u.id = res.user_id
		JOIN results ref ON ref.id = $1
		WHERE res.id <> $1 AND res.radar_vec IS NOT NULL
		ORDER BY distance
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, id, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var similar []domain.SimilarResult
	for rows.Next() {
		var s domain.SimilarResult
		if err := rows.Scan(&s.ID, &s.Nickname, &s.TypeCode, &s.TypeName, &s.Distance); err != nil {
			return nil, err
		}
		similar = append(similar, s)
	}
	return similar, rows.Err()
}

func marshalFragment(fragment interface{}) ([]byte, error) {
	switch v := fragment.(type) {
	case *domain.EightfoldResult:
		if v == nil {
			return nil, nil
		}
	case *domain.NinefoldResult:
		if v == nil {
			return nil, nil
		}
	}
	return json.Marshal(fragment)
}

// radarVector flattens the radar map into the canonical dimension order
// used by the vector column.
func radarVector(radar map[string]float64) []float32 {
	vec := make([]float32, len(domain.Dimensions))
	for i, dim := range domain.Dimensions {
		vec[i] = float32(radar[dim])
	}
	return vec
}

func scanSummaries(rows pgx.Rows) ([]domain.ResultSummary, error) {
	var summaries []domain.ResultSummary
	for rows.Next() {
		var s domain.ResultSummary
		if err := rows.Scan(&s.ID, &s.Nickname, &s.TypeCode, &s.TypeName, &s.Primary, &s.PrimaryScore, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
