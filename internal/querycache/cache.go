// Package querycache - кэш запросов с ключом по логическому пути, например
// "/api/projects/5/members". Одновременные запросы одного ключа делят один вызов
// бэкенда, а запрос переживает вызвавшего, так что медленный ответ все равно
// попадает в кэш к следующему рендеру.
package querycache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bagdasarian/project-roster/internal/logger"
)

// Store хранит закодированные значения. Реализации должны быть потокобезопасны.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Doer - байтовая операция "взять из кэша или загрузить", на которой построен Fetch
type Doer interface {
	Do(ctx context.Context, key string, fetcher func(context.Context) ([]byte, error)) ([]byte, error)
}

type Cache struct {
	store        Store
	group        singleflight.Group
	fetchTimeout time.Duration
	log          *logger.Logger

	mu   sync.Mutex
	keys map[string]*keyState
}

// keyState живет, пока ключ кто-то держит: запрос в полете или сброс.
type keyState struct {
	mu   sync.Mutex
	gen  uint64
	refs int
}

func New(store Store, fetchTimeout time.Duration, log *logger.Logger) *Cache {
	return &Cache{
		store:        store,
		fetchTimeout: fetchTimeout,
		log:          log,
		keys:         make(map[string]*keyState),
	}
}

// Fetch возвращает значение из кэша или получает его через fetcher.
// Ошибки получают все ожидающие, в кэш они не попадают.
func Fetch[T any](ctx context.Context, c Doer, key string, fetcher func(context.Context) (T, error)) (T, error) {
	var zero T

	data, err := c.Do(ctx, key, func(fctx context.Context) ([]byte, error) {
		value, err := fetcher(fctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(value)
	})
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return value, nil
}

// Do возвращает сохраненные байты или запускает fetcher один раз на всех ожидающих.
// Запрос идет со своим таймаутом: ушедший вызывающий его не отменяет.
func (c *Cache) Do(ctx context.Context, key string, fetcher func(context.Context) ([]byte, error)) ([]byte, error) {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warnw("query cache read failed", "key", key, "error", err)
	} else if ok {
		return data, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		st := c.acquire(key)
		defer c.release(key, st)

		st.mu.Lock()
		gen := st.gen
		st.mu.Unlock()

		fctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
		defer cancel()

		data, err := fetcher(fctx)
		if err != nil {
			return nil, err
		}

		// Ключ, сброшенный во время запроса, не заполняется старым ответом.
		st.mu.Lock()
		defer st.mu.Unlock()
		if st.gen == gen {
			if err := c.store.Set(fctx, key, data); err != nil {
				c.log.Warnw("query cache write failed", "key", key, "error", err)
			}
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// Invalidate сбрасывает ключи: следующий Fetch пойдет в бэкенд.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		st := c.acquire(key)
		st.mu.Lock()
		st.gen++
		c.group.Forget(key)
		st.mu.Unlock()
		c.release(key, st)
	}

	return c.store.Delete(ctx, keys...)
}

func (c *Cache) acquire(key string) *keyState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.keys[key]
	if !ok {
		st = &keyState{}
		c.keys[key] = st
	}
	st.refs++
	return st
}

func (c *Cache) release(key string, st *keyState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st.refs--
	if st.refs == 0 {
		delete(c.keys, key)
	}
}
