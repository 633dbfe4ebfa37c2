// Package redis provides Redis-list-backed pipeline transports: a Source
// that pops raw chunks pushed by producers and a Sink that pushes encoded
// frames for downstream consumers.
package redis

import (
	"context"
	"io"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/delimcodec/pipeline"
)

// ListSource pops input chunks from a Redis list with BLPOP.
type ListSource struct {
	rdb redis.UniversalClient
	key string
	// idle bounds how long Next blocks waiting for a chunk. When it expires
	// the stream is treated as drained and Next returns io.EOF. 0 blocks
	// until a chunk arrives or ctx is canceled.
	idle time.Duration
}

var _ pipeline.Source = (*ListSource)(nil)

func NewListSource(client redis.UniversalClient, key string, idle time.Duration) *ListSource {
	return &ListSource{rdb: client, key: key, idle: idle}
}

func (s *ListSource) Next(ctx context.Context) ([]byte, error) {
	res, err := s.rdb.BLPop(ctx, s.idle, s.key).Result()
	if err == redis.Nil {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	// res is [key, value]
	return []byte(res[1]), nil
}

// ListSink appends encoded frames to a Redis list with RPUSH. Each Write is
// executed synchronously, so the frame buffer may be reused by the caller
// after Write returns.
type ListSink struct {
	rdb redis.UniversalClient
	key string
}

var _ pipeline.Sink = (*ListSink)(nil)

func NewListSink(client redis.UniversalClient, key string) *ListSink {
	return &ListSink{rdb: client, key: key}
}

func (s *ListSink) Write(ctx context.Context, frame []byte) error {
	return s.rdb.RPush(ctx, s.key, frame).Err()
}
