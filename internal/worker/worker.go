package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Task 是背景執行的工作，ctx 帶有逾時
type Task func(ctx context.Context) error

// Pool 負責在請求之外執行非關鍵的工作（例如記錄最後登入時間）
type Pool interface {
	// Submit 不會阻塞；佇列已滿或已停止時回傳 false
	Submit(name string, t Task) bool
	Stop()
}

type Options struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
	Logger    zerolog.Logger
}

type job struct {
	name string
	task Task
}

type pool struct {
	jobs    chan job
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
	timeout time.Duration
	log     zerolog.Logger
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(opts Options) Pool {
	n := opts.Workers
	if n <= 0 {
		n = 1
	}
	size := opts.QueueSize
	if size <= 0 {
		size = n * 16
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	p := &pool{jobs: make(chan job, size), timeout: timeout, log: opts.Logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				p.run(j)
			}
		}()
	}
	return p
}

func (p *pool) run(j job) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("task", j.name).Interface("panic", r).Msg("worker task panicked")
		}
	}()
	if j.task == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := j.task(ctx); err != nil {
		p.log.Warn().Err(err).Str("task", j.name).Msg("worker task failed")
	}
}

func (p *pool) Submit(name string, t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- job{name: name, task: t}:
		return true
	default:
		p.log.Warn().Str("task", name).Msg("worker queue full, task dropped")
		return false
	}
}

// Stop 等待佇列中的工作全部完成
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Inline 在呼叫端同步執行，測試與 CLI 使用
type Inline struct{}

func (Inline) Submit(_ string, t Task) bool {
	if t != nil {
		_ = t(context.Background())
	}
	return true
}

func (Inline) Stop() {}
