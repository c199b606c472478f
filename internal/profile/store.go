package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"cvgen-utils/internal/config"
	"cvgen-utils/internal/logging"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// Store persists the singleton candidate profile as a JSON document in
// Redis. One profile exists per deployment under a fixed key.
type Store struct {
	client *redis.Client
	key    string
	logger logging.Logger
}

// NewStore creates a profile store from the Redis configuration
func NewStore(cfg *config.Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	if cfg.Redis.Timeout > 0 {
		opts.ReadTimeout = cfg.Redis.Timeout
		opts.WriteTimeout = cfg.Redis.Timeout
		opts.DialTimeout = cfg.Redis.Timeout
	}

	return &Store{
		client: redis.NewClient(opts),
		key:    cfg.Redis.ProfileKey,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Get returns the stored profile, or nil when none has been saved yet
func (s *Store) Get(ctx context.Context) (*models.Profile, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("stored profile is not valid JSON: %w", err)
	}
	return &profile, nil
}

// Require returns the stored profile or a not-found error. Generation
// operations call this before doing any outbound work.
func (s *Store) Require(ctx context.Context) (*models.Profile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NewProfileNotFoundError()
	}
	return profile, nil
}

// Save stores the profile, replacing any existing one. Creation and update
// timestamps are stamped here; the stored ID survives replacement.
func (s *Store) Save(ctx context.Context, profile *models.Profile) error {
	now := time.Now().UTC()

	existing, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("Profile saved", map[string]interface{}{
		"profile_id": profile.ID,
		"full_name":  profile.FullName,
	})
	return nil
}

// Delete removes the stored profile
func (s *Store) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// Ping verifies connectivity to Redis
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
