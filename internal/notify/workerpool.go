package notify

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrPoolClosed = errors.New("worker pool closed")

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	pool chan Task
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{
		pool: make(chan Task, size),
		done: make(chan struct{}),
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.pool:
			if err := task(); err != nil {
				zap.L().Error("Task execution failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-wp.done:
		return ErrPoolClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.done:
		return ErrPoolClosed
	case wp.pool <- task:
		return nil
	}
}

// Close stops the workers once the running tasks return. Queued tasks are
// dropped.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.done)
	})
	wp.wg.Wait()
}
