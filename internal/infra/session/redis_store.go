package session

import (
	"context"
	"log/slog"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// redisStore keeps each session key as its own Redis string.
type redisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a SessionRepository on top of Redis.
func NewRedisStore(client *redis.Client, prefix string) repository.SessionRepository {
	return &redisStore{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (s *redisStore) key(name string) string {
	return s.prefix + name
}

// SaveSession replaces every key atomically. Keys expire with the token when its expiry is known.
func (s *redisStore) SaveSession(ctx context.Context, session *entity.Session) error {
	values, err := encodeSession(session)
	if err != nil {
		return err
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return errors.New("session already expired")
		}
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.keys()...)
		for name, value := range values {
			pipe.Set(ctx, s.key(name), value, ttl)
		}

		return nil
	})

	return errors.WithStack(err)
}

func (s *redisStore) LoadSession(ctx context.Context) (*entity.Session, error) {
	names := storageKeys()
	raw, err := s.client.MGet(ctx, s.keys()...).Result()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values := make(map[string]string, len(names))
	for i, name := range names {
		if v, ok := raw[i].(string); ok {
			values[name] = v
		}
	}

	return decodeSession(values)
}

func (s *redisStore) ClearSession(ctx context.Context) error {
	return errors.WithStack(s.client.Del(ctx, s.keys()...).Err())
}

func (s *redisStore) keys() []string {
	names := storageKeys()
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = s.key(name)
	}

	return keys
}

// StoreParams holds dependencies for the session store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the SessionRepository selected by configuration.
func NewStore(params StoreParams) (repository.SessionRepository, error) {
	cfg := params.Config.Session

	switch cfg.Store {
	case config.SessionStoreFile, "":
		params.Logger.Info("Using file session store", slog.String("path", cfg.FilePath))

		return NewFileStore(cfg.FilePath), nil

	case config.SessionStoreRedis:
		if params.Config.Redis == nil {
			return nil, errors.New("redis configuration is required for the redis session store")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})
		params.Logger.Info("Using redis session store", slog.String("addr", params.Config.Redis.Addr))

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "ping redis")
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info("Closing redis client")

				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", cfg.Store)
	}
}
