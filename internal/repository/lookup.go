package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"league-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// LookupRepository records successfully resolved Riot IDs so the search box
// can offer suggestions. It never stores aggregation data; profiles and
// matches are always fetched fresh from upstream.
type LookupRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewLookupRepository(db *sql.DB, logger zerolog.Logger) *LookupRepository {
	return &LookupRepository{db: db, logger: logger}
}

func (r *LookupRepository) Record(ctx context.Context, lookup *domain.Lookup) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate lookup id: %w", err)
	}

	now := time.Now()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO lookups (id, puuid, game_name, tag_line, platform, profile_icon_id, summoner_level, last_seen_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (puuid) DO UPDATE SET
			game_name = excluded.game_name,
			tag_line = excluded.tag_line,
			platform = excluded.platform,
			profile_icon_id = excluded.profile_icon_id,
			summoner_level = excluded.summoner_level,
			last_seen_at = excluded.last_seen_at,
			updated_at = excluded.updated_at`,
		id, lookup.PUUID, lookup.GameName, lookup.TagLine, lookup.Platform,
		lookup.ProfileIconID, lookup.SummonerLevel, now, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to record lookup %s: %w", lookup.PUUID, err)
	}

	r.logger.Debug().
		Str("puuid", lookup.PUUID).
		Str("game_name", lookup.GameName).
		Str("tag_line", lookup.TagLine).
		Msg("lookup recorded")
	return nil
}

func (r *LookupRepository) Search(ctx context.Context, query string, limit int) ([]domain.Lookup, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, puuid, game_name, tag_line, platform, profile_icon_id, summoner_level, last_seen_at, created_at, updated_at
		FROM lookups
		WHERE game_name LIKE ? OR tag_line LIKE ?
		ORDER BY last_seen_at DESC
		LIMIT ?`,
		pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search lookups: %w", err)
	}
	defer rows.Close()

	return scanLookups(rows)
}

func (r *LookupRepository) Recent(ctx context.Context, limit int) ([]domain.Lookup, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, puuid, game_name, tag_line, platform, profile_icon_id, summoner_level, last_seen_at, created_at, updated_at
		FROM lookups
		ORDER BY last_seen_at DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent lookups: %w", err)
	}
	defer rows.Close()

	return scanLookups(rows)
}

func scanLookups(rows *sql.Rows) ([]domain.Lookup, error) {
	lookups := []domain.Lookup{}
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(
			&l.ID, &l.PUUID, &l.GameName, &l.TagLine, &l.Platform,
			&l.ProfileIconID, &l.SummonerLevel, &l.LastSeenAt, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
