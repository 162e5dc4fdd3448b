package memory

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// state is one consistent snapshot of the ledger.
// Stored entities are never mutated in place, so snapshots may share them.
type state struct {
	accounts     map[string]*entity.Account
	byEmail      map[string]string
	byPhone      map[string]string
	transactions []*entity.Transaction // insertion order
	byKey        map[string]*entity.Transaction
}

func newState() *state {
	return &state{
		accounts: make(map[string]*entity.Account),
		byEmail:  make(map[string]string),
		byPhone:  make(map[string]string),
		byKey:    make(map[string]*entity.Transaction),
	}
}

func (s *state) clone() *state {
	c := &state{
		accounts:     make(map[string]*entity.Account, len(s.accounts)),
		byEmail:      make(map[string]string, len(s.byEmail)),
		byPhone:      make(map[string]string, len(s.byPhone)),
		transactions: s.transactions[:len(s.transactions):len(s.transactions)],
		byKey:        make(map[string]*entity.Transaction, len(s.byKey)),
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.byEmail {
		c.byEmail[k] = v
	}
	for k, v := range s.byPhone {
		c.byPhone[k] = v
	}
	for k, v := range s.byKey {
		c.byKey[k] = v
	}
	return c
}

func idempotencyIndex(accountID, key string) string {
	return accountID + "\x00" + key
}

type txKey struct{}

// tx stages writes on a private snapshot until commit
type tx struct {
	staged *state
	done   bool
}

// Store is a process-local ledger store. A unit of work holds the store's
// lock from Begin until Commit or Rollback, so units of work are serializable.
type Store struct {
	lock         chan struct{} // one slot; held while state is in use
	state        *state
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ persistence.UnitOfWork = (*Store)(nil)

// NewStore creates an empty in-memory ledger store
func NewStore(idGenerator coreport.IDGenerator, timeProvider coreport.TimeProvider, logger coreport.Logger) *Store {
	return &Store{
		lock:         make(chan struct{}, 1),
		state:        newState(),
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Begin starts a unit of work and returns a context carrying it
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	if _, ok := ctx.Value(txKey{}).(*tx); ok {
		return ctx, errors.New("memory store: nested unit of work")
	}

	if err := s.acquire(ctx); err != nil {
		return ctx, err
	}
	t := &tx{staged: s.state.clone()}
	return context.WithValue(ctx, txKey{}, t), nil
}

// Commit publishes the staged snapshot
func (s *Store) Commit(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok || t.done {
		return errors.New("memory store: no active unit of work")
	}
	t.done = true
	s.state = t.staged
	s.release()
	return nil
}

// Rollback discards the staged snapshot; it is a no-op once the unit of work ended
func (s *Store) Rollback(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok || t.done {
		return nil
	}
	t.done = true
	s.release()
	return nil
}

// Accounts returns an account repository bound to the unit of work in ctx, if any
func (s *Store) Accounts(ctx context.Context) persistence.AccountRepository {
	return &accountRepository{view: s.viewFor(ctx)}
}

// Transactions returns a transaction repository bound to the unit of work in ctx, if any
func (s *Store) Transactions(ctx context.Context) persistence.TransactionRepository {
	return &transactionRepository{
		view:         s.viewFor(ctx),
		idGenerator:  s.idGenerator,
		timeProvider: s.timeProvider,
		logger:       s.logger,
	}
}

// view runs fn against a consistent state
type view func(fn func(st *state) error) error

func (s *Store) viewFor(ctx context.Context) view {
	if t, ok := ctx.Value(txKey{}).(*tx); ok {
		return func(fn func(st *state) error) error {
			if t.done {
				return errs.ErrInconsistentLedgerState
			}
			return fn(t.staged)
		}
	}
	return func(fn func(st *state) error) error {
		if err := s.acquire(ctx); err != nil {
			return err
		}
		defer s.release()
		return fn(s.state)
	}
}

// acquire waits for the store lock until ctx ends
func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.lock
}
