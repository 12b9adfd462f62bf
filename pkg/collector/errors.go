package collector

import "errors"

var (
	ErrProfileNotFound   = errors.New("collector.profile_not_found")
	ErrEmptyToken        = errors.New("collector.empty_token")
	ErrInvalidRedisURL   = errors.New("collector.invalid_redis_url")
	ErrRedisNotReady     = errors.New("collector.redis_not_ready")
	ErrHealthcheckFailed = errors.New("collector.redis_healthcheck_failed")
)
