package recstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/course-recommender/internal/domain/recommender"
)

// keyValue is the slice of Valkey the store needs.
type keyValue interface {
	// get reports found=false for a nil reply.
	get(ctx context.Context, key string) (value string, found bool, err error)
	// set stores value; ttl <= 0 means no expiry.
	set(ctx context.Context, key, value string, ttl time.Duration) error
}

type valkeyKV struct {
	client valkey.Client
}

func (kv valkeyKV) get(ctx context.Context, key string) (string, bool, error) {
	payload, err := kv.client.Do(ctx, kv.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return payload, true, nil
}

func (kv valkeyKV) set(ctx context.Context, key, value string, ttl time.Duration) error {
	builder := kv.client.B().Set().Key(key).Value(value)
	var cmd valkey.Completed
	if ttl > 0 {
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return kv.client.Do(ctx, cmd).Error()
}

type cacheMiss struct{}

// ValkeyStore caches recommendations in a Valkey-compatible database.
// Every round trip goes through a circuit breaker so an unhealthy server
// degrades to cache misses quickly.
type ValkeyStore struct {
	kv      keyValue
	prefix  string
	breaker *gobreaker.CircuitBreaker[any]
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, breakerCfg BreakerConfig, logger *slog.Logger) *ValkeyStore {
	return newValkeyStore(valkeyKV{client: client}, prefix, breakerCfg, logger)
}

func newValkeyStore(kv keyValue, prefix string, breakerCfg BreakerConfig, logger *slog.Logger) *ValkeyStore {
	if prefix == "" {
		prefix = "recommender"
	}
	return &ValkeyStore{
		kv:      kv,
		prefix:  prefix,
		breaker: NewCircuitBreaker(breakerCfg, logger),
	}
}

func (s *ValkeyStore) GetRecommendation(ctx context.Context, modelID uuid.UUID, userID int64) (recommender.Recommendation, bool, error) {
	if userID <= 0 {
		return recommender.Recommendation{}, false, nil
	}
	out, err := s.breaker.Execute(func() (any, error) {
		payload, found, err := s.kv.get(ctx, s.entryKey(modelID, userID))
		if err != nil {
			return nil, err
		}
		if !found {
			return cacheMiss{}, nil
		}
		return payload, nil
	})
	if err != nil {
		return recommender.Recommendation{}, false, fmt.Errorf("valkey get: %w", err)
	}
	payload, ok := out.(string)
	if !ok {
		return recommender.Recommendation{}, false, nil
	}
	var rec recommender.Recommendation
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return recommender.Recommendation{}, false, fmt.Errorf("decode cached recommendation: %w", err)
	}
	return rec, true, nil
}

func (s *ValkeyStore) SaveRecommendation(ctx context.Context, modelID uuid.UUID, rec recommender.Recommendation, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode recommendation: %w", err)
	}
	// EX takes whole seconds
	if ttl > 0 && ttl < time.Second {
		ttl = time.Second
	}
	_, err = s.breaker.Execute(func() (any, error) {
		return nil, s.kv.set(ctx, s.entryKey(modelID, rec.UserID), string(payload), ttl)
	})
	if err != nil {
		return fmt.Errorf("valkey set: %w", err)
	}
	return nil
}

// State reports the breaker state for diagnostics.
func (s *ValkeyStore) State() string {
	return s.breaker.State().String()
}

func (s *ValkeyStore) entryKey(modelID uuid.UUID, userID int64) string {
	return fmt.Sprintf("%s:rec:%s:%d", s.prefix, modelID, userID)
}

var _ recommender.Store = (*ValkeyStore)(nil)
