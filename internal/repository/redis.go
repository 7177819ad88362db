package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const redisBlobPrefix = "session_blob:"

// redisBlobRepo keeps encrypted session blobs as plain string keys. Blobs
// carry no Redis TTL: expiry is decided by the session store's sweep so all
// backends behave identically.
type redisBlobRepo struct {
	client *redis.Client
}

func NewRedisBlobRepository(redisURL string) (BlobRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &redisBlobRepo{client: client}, nil
}

func (r *redisBlobRepo) key(id string) string {
	return redisBlobPrefix + id
}

func (r *redisBlobRepo) Put(ctx context.Context, id string, blob string) error {
	return r.client.Set(ctx, r.key(id), blob, 0).Err()
}

func (r *redisBlobRepo) Get(ctx context.Context, id string) (string, bool, error) {
	blob, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return blob, true, nil
}

func (r *redisBlobRepo) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *redisBlobRepo) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, redisBlobPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), redisBlobPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *redisBlobRepo) Count(ctx context.Context) (int, error) {
	ids, err := r.IDs(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
