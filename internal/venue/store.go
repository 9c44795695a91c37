// README: Venue lookups backed by Postgres with a Redis read-through cache.
package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "venue:city:"
	cacheTTL       = 15 * time.Minute
	defaultLimit   = 30
)

type Store struct {
	pool  *pgxpool.Pool
	cache *redis.Client
}

// NewStore builds a venue store. Either backend may be nil: a nil pool
// means every lookup returns no rows, a nil cache disables caching.
func NewStore(pool *pgxpool.Pool, cache *redis.Client) *Store {
	return &Store{pool: pool, cache: cache}
}

// ByCity returns venues whose city matches case-insensitively, freshest
// first. Cache hits skip the database entirely.
func (s *Store) ByCity(ctx context.Context, city string, limit int) ([]Venue, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	key := cacheKeyPrefix + strings.ToLower(strings.TrimSpace(city))

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached []Venue
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	if s.pool == nil {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT place_key, name, category, address, description, source_url
		FROM places
		WHERE LOWER(city) LIKE $1
		ORDER BY last_updated_at DESC
		LIMIT $2`,
		"%"+strings.ToLower(strings.TrimSpace(city))+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("query places: %w", err)
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.Address, &v.Description, &v.SourceURL); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}

	if s.cache != nil && len(venues) > 0 {
		if raw, err := json.Marshal(venues); err == nil {
			if err := s.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
				log.Printf("venue: cache write failed for %s: %v", key, err)
			}
		}
	}
	return venues, nil
}
