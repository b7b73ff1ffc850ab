package usecase

import (
	"context"
	"log"
	"time"
)

// WriteSink decouples cache persistence from the read path. Dispatched
// writes are never awaited by the caller: failures are logged and swallowed
// so write latency can never slow down feed rendering.
type WriteSink interface {
	Dispatch(name string, write func(ctx context.Context) error)
}

// AsyncWriteSink runs each write on its own goroutine with a bounded
// timeout. This is the production fire-and-forget behaviour.
type AsyncWriteSink struct {
	logger  *log.Logger
	timeout time.Duration
}

func NewAsyncWriteSink(logger *log.Logger, timeout time.Duration) *AsyncWriteSink {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AsyncWriteSink{logger: logger, timeout: timeout}
}

func (s *AsyncWriteSink) Dispatch(name string, write func(ctx context.Context) error) {
	if write == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := write(ctx); err != nil && s.logger != nil {
			s.logger.Printf("score write dropped | op=%s err=%v", name, err)
		}
	}()
}
