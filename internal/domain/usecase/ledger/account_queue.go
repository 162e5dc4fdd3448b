package ledger

import (
	"context"
	"sync"
	"sync/atomic"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// defaultQueueSize bounds the jobs waiting per account before callers block
const defaultQueueSize = 100

// Job is a unit of work executed by an account's worker
type Job func(ctx context.Context) error

// AccountQueue runs jobs for the same account strictly one at a time,
// in arrival order, on a dedicated worker goroutine per account
type AccountQueue struct {
	logger    coreport.Logger
	queueSize int

	mu     sync.RWMutex // guards closed against concurrent sends
	closed bool

	accountQueues  sync.Map // map[string]chan *queuedJob
	queueWaitGroup sync.WaitGroup
}

// Job states; a job leaves jobPending exactly once
const (
	jobPending int32 = iota
	jobRunning
	jobAbandoned
)

type queuedJob struct {
	ctx        context.Context
	accountID  string
	job        Job
	state      atomic.Int32
	resultChan chan error
}

// NewAccountQueue creates a new per-account queue
func NewAccountQueue(logger coreport.Logger, queueSize int) *AccountQueue {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &AccountQueue{
		logger:    logger,
		queueSize: queueSize,
	}
}

// Do enqueues the job on the account's queue and waits for its result.
// When ctx ends before the worker starts the job, the job is dropped and ctx.Err() is returned.
// A started job runs to completion without ctx cancellation and Do returns its result.
func (q *AccountQueue) Do(ctx context.Context, accountID string, job Job) error {
	queued := &queuedJob{
		ctx:        ctx,
		accountID:  accountID,
		job:        job,
		resultChan: make(chan error, 1),
	}

	if err := q.enqueue(ctx, queued); err != nil {
		return err
	}

	select {
	case err := <-queued.resultChan:
		return err
	case <-ctx.Done():
	}

	if queued.state.CompareAndSwap(jobPending, jobAbandoned) {
		q.logger.Warn("Context canceled before job started", map[string]any{
			"account_id": accountID,
			"error":      ctx.Err().Error(),
		})
		return ctx.Err()
	}

	q.logger.Warn("Context canceled after job was taken, waiting for its result", map[string]any{
		"account_id": accountID,
	})
	return <-queued.resultChan
}

func (q *AccountQueue) enqueue(ctx context.Context, queued *queuedJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return errs.ErrStoreUnavailable
	}

	select {
	case q.queueFor(queued.accountID) <- queued:
		q.logger.Debug("Job enqueued", map[string]any{
			"account_id": queued.accountID,
		})
		return nil
	case <-ctx.Done():
		q.logger.Warn("Context canceled while enqueueing job", map[string]any{
			"account_id": queued.accountID,
			"error":      ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// queueFor returns the account's queue, starting its worker on first use
func (q *AccountQueue) queueFor(accountID string) chan *queuedJob {
	if existing, ok := q.accountQueues.Load(accountID); ok {
		return existing.(chan *queuedJob)
	}

	queueIface, loaded := q.accountQueues.LoadOrStore(accountID, make(chan *queuedJob, q.queueSize))
	queue := queueIface.(chan *queuedJob)
	if !loaded {
		q.logger.Debug("Starting queue worker for account", map[string]any{
			"account_id": accountID,
		})
		q.queueWaitGroup.Add(1)
		go q.work(accountID, queue)
	}
	return queue
}

func (q *AccountQueue) work(accountID string, queue chan *queuedJob) {
	defer q.queueWaitGroup.Done()

	for queued := range queue {
		if err := queued.ctx.Err(); err != nil {
			if queued.state.CompareAndSwap(jobPending, jobAbandoned) {
				queued.resultChan <- err
			}
			continue
		}
		if !queued.state.CompareAndSwap(jobPending, jobRunning) {
			// Caller gave up before the job started
			continue
		}
		queued.resultChan <- queued.job(context.WithoutCancel(queued.ctx))
	}

	q.logger.Debug("Queue worker stopped", map[string]any{
		"account_id": accountID,
	})
}

// Shutdown stops accepting jobs, lets queued jobs finish and waits for all workers
func (q *AccountQueue) Shutdown() {
	q.logger.Info("Shutting down account queue", nil)

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.accountQueues.Range(func(_, queueIface any) bool {
		close(queueIface.(chan *queuedJob))
		return true
	})
	q.mu.Unlock()

	q.queueWaitGroup.Wait()
	q.logger.Info("Account queue shut down successfully", nil)
}
