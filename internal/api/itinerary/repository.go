package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

var _ Repository = (*PostgresItineraryRepository)(nil)

// Repository persists itineraries for share links.
type Repository interface {
	SaveItinerary(ctx context.Context, data types.ItineraryData) (*types.SavedItinerary, error)
	GetByShareCode(ctx context.Context, shareCode string) (*types.SavedItinerary, error)
	ListRecent(ctx context.Context, limit int) ([]types.SavedItinerary, error)
}

// PgxPool is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresItineraryRepository struct {
	logger *slog.Logger
	pgpool PgxPool
}

func NewPostgresItineraryRepository(pgpool PgxPool, logger *slog.Logger) *PostgresItineraryRepository {
	return &PostgresItineraryRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

// newShareCode derives a short link token. Uniqueness is enforced by the
// share_code column constraint; the first uuid block is plenty for an
// operator-facing tool.
func newShareCode() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}

func (r *PostgresItineraryRepository) SaveItinerary(ctx context.Context, data types.ItineraryData) (*types.SavedItinerary, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal itinerary: %w", err)
	}

	query := `
        INSERT INTO itineraries (share_code, data)
        VALUES ($1, $2)
        RETURNING id, share_code, created_at
    `
	saved := types.SavedItinerary{Data: data.Clone()}
	if err := r.pgpool.QueryRow(ctx, query, newShareCode(), payload).Scan(
		&saved.ID, &saved.ShareCode, &saved.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to insert itinerary: %w", err)
	}
	return &saved, nil
}

func (r *PostgresItineraryRepository) GetByShareCode(ctx context.Context, shareCode string) (*types.SavedItinerary, error) {
	query := `
        SELECT id, share_code, data, created_at
        FROM itineraries
        WHERE share_code = $1
    `
	var (
		saved   types.SavedItinerary
		payload []byte
	)
	if err := r.pgpool.QueryRow(ctx, query, shareCode).Scan(
		&saved.ID, &saved.ShareCode, &payload, &saved.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrShareLinkNotFound
		}
		return nil, fmt.Errorf("failed to find itinerary by share code: %w", err)
	}

	// Stored documents predate schema changes; normalization keeps reads
	// total instead of trusting the payload shape.
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode stored itinerary: %w", err)
	}
	saved.Data = NormalizeItinerary(decoded)
	return &saved, nil
}

func (r *PostgresItineraryRepository) ListRecent(ctx context.Context, limit int) ([]types.SavedItinerary, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
        SELECT id, share_code, data, created_at
        FROM itineraries
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.pgpool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	defer rows.Close()

	var out []types.SavedItinerary
	for rows.Next() {
		var (
			saved   types.SavedItinerary
			payload []byte
		)
		if err := rows.Scan(&saved.ID, &saved.ShareCode, &payload, &saved.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary row: %w", err)
		}
		var decoded any
		if err := json.Unmarshal(payload, &decoded); err != nil {
			r.logger.WarnContext(ctx, "Skipping undecodable stored itinerary",
				slog.String("share_code", saved.ShareCode), slog.Any("error", err))
			continue
		}
		saved.Data = NormalizeItinerary(decoded)
		out = append(out, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate itinerary rows: %w", err)
	}
	return out, nil
}
