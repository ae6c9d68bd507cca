package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrLockFailed = errors.New("failed to acquire distributed lock")

// Locker выдает взаимоисключающие блокировки по ключу.
// Интерфейс нужен, чтобы в тестах подменять Redis на no-op реализацию.
type Locker interface {
	// Acquire блокирует ключ и возвращает функцию освобождения.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// RedisLocker - распределенная блокировка на Redis (SET NX EX).
// Value хранит владельца, чтобы истекшая блокировка чужого процесса
// не была снята по ошибке.
type RedisLocker struct {
	client        *redis.Client
	expiration    time.Duration
	retryInterval time.Duration
	maxRetries    int
}

func NewRedisLocker(client *redis.Client, expiration time.Duration) *RedisLocker {
	return &RedisLocker{
		client:        client,
		expiration:    expiration,
		retryInterval: 100 * time.Millisecond,
		maxRetries:    30,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	value := uuid.NewString()

	for i := 0; i < l.maxRetries; i++ {
		ok, err := l.client.SetNX(ctx, key, value, l.expiration).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() { l.release(key, value) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryInterval):
		}
	}

	return nil, ErrLockFailed
}

// release снимает блокировку только если value совпадает с владельцем.
// Lua-скрипт делает "проверить и удалить" атомарным.
func (l *RedisLocker) release(key, value string) {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	l.client.Eval(ctx, script, []string{key}, value)
}

// VerifyKey - ключ блокировки верификации платежа для одного аккаунта.
// Две параллельные верификации одного интерна сериализуются этим ключом.
func VerifyKey(internID string) string {
	return "pay:verify:" + internID
}
