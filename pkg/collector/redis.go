package collector

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis profile store.
type RedisConfig struct {
	URL            string        `env:"REDIS_URL"` // e.g. "redis://:password@localhost:6379/0"; empty keeps profiles in memory
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"mobiledetect:profile:"`
	TTL            time.Duration `env:"REDIS_TTL" envDefault:"1h"`
}

// ConnectRedis opens a client and pings it until it answers, the attempts run
// out or the connect timeout expires.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opt)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// RedisHealthcheck returns a probe that pings the client.
func RedisHealthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

const (
	defaultKeyPrefix = "mobiledetect:profile:"
	defaultTTL       = time.Hour
	indexKeySuffix   = "index"
	maxIndexLen      = 1000
)

// RedisStore keeps profiles as JSON values with a TTL. A capped list holds
// the tokens, newest first.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store on client. Empty prefix or zero ttl use the
// defaults.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(token string) string { return s.prefix + token }
func (s *RedisStore) indexKey() string        { return s.prefix + indexKeySuffix }

func (s *RedisStore) Save(ctx context.Context, p Profile) error {
	if p.Token == "" {
		return ErrEmptyToken
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(p.Token), data, s.ttl)
	pipe.LPush(ctx, s.indexKey(), p.Token)
	pipe.LTrim(ctx, s.indexKey(), 0, maxIndexLen-1)
	pipe.Expire(ctx, s.indexKey(), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, token string) (Profile, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *RedisStore) List(ctx context.Context, limit int) ([]Profile, error) {
	if limit <= 0 {
		limit = DefaultCapacity
	}

	tokens, err := s.client.LRange(ctx, s.indexKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return []Profile{}, nil
	}

	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = s.key(t)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// expired
			continue
		}
		var p Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
