package facts

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"skinatlas/pkg/platform/sentinel"
)

// DefaultRedisPrefix namespaces fact hashes.
const DefaultRedisPrefix = "skinatlas:facts"

const scanBatch = 200

// RedisSource reads one hash per country under "<prefix>:<country>". A
// "country" field inside the hash, when present, overrides the key suffix.
type RedisSource struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisSource constructs a source; an empty prefix uses DefaultRedisPrefix.
func NewRedisSource(client redis.UniversalClient, prefix string) *RedisSource {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) key(country string) string {
	return s.prefix + ":" + country
}

// keys lists every fact hash under the prefix in lexical order.
func (s *RedisSource) keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.prefix+":*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w: %w", s.prefix, sentinel.ErrUnavailable, err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *RedisSource) Load(ctx context.Context) ([]Entry, error) {
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(keys))
	for i, k := range keys {
		cmds[i] = pipe.HGetAll(ctx, k)
	}
	if len(keys) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("read fact hashes: %w: %w", sentinel.ErrUnavailable, err)
		}
	}

	entries := make([]Entry, 0, len(keys))
	for i, k := range keys {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		country := fields["country"]
		if country == "" {
			country = strings.TrimPrefix(k, s.prefix+":")
		}
		entries = append(entries, Entry{
			Country: country,
			CountryRecord: CountryRecord{
				AdaptationMechanisms: fields["adaptation_mechanisms"],
				HistoricalContext:    fields["historical_context"],
				ModernChallenges:     fields["modern_challenges"],
				Exceptions:           fields["exceptions"],
				LifestyleImpact:      fields["lifestyle_impact"],
			},
		})
	}
	return entries, nil
}

// Seed replaces every hash under the prefix with entries in a single
// transaction, matching PostgresSource.Seed. Repeated countries overwrite the
// same hash, so the last entry wins as in every other source.
func (s *RedisSource) Seed(ctx context.Context, entries []Entry) error {
	stale, err := s.keys(ctx)
	if err != nil {
		return fmt.Errorf("seed redis facts: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(stale) > 0 {
			pipe.Del(ctx, stale...)
		}
		for _, e := range entries {
			pipe.HSet(ctx, s.key(e.Country), map[string]any{
				"country":               e.Country,
				"adaptation_mechanisms": e.AdaptationMechanisms,
				"historical_context":    e.HistoricalContext,
				"modern_challenges":     e.ModernChallenges,
				"exceptions":            e.Exceptions,
				"lifestyle_impact":      e.LifestyleImpact,
			})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed redis facts: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}
