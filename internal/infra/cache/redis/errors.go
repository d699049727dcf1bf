package redis

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключ отсутствует в кеше
	ErrCacheMiss = errors.New("redis.cache: key not found")

	// ErrConnect возвращается при ошибке подключения к Redis
	ErrConnect = errors.New("redis.cache: failed to connect")

	// ErrOperation возвращается при ошибке выполнения команды
	ErrOperation = errors.New("redis.cache: operation failed")
)
