package internal

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DrGermanius/receipt-points/internal/model"
)

type IStore interface {
	Submit(context.Context, model.Receipt) string
	Get(context.Context, string) (model.Receipt, error)
}

// Store keeps submitted receipts in memory for the lifetime of the
// process. Entries are write-once; there is no update or delete.
type Store struct {
	mu       sync.RWMutex
	receipts map[string]model.Receipt
	logger   *zap.SugaredLogger
}

func NewStore(logger *zap.SugaredLogger) *Store {
	return &Store{receipts: make(map[string]model.Receipt), logger: logger}
}

func (s *Store) Submit(_ context.Context, r model.Receipt) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.receipts[id] = r
	s.mu.Unlock()

	s.logger.Debugf("stored receipt %s from %s", id, r.Retailer)
	return id
}

func (s *Store) Get(_ context.Context, id string) (model.Receipt, error) {
	s.mu.RLock()
	r, ok := s.receipts[id]
	s.mu.RUnlock()

	if !ok {
		return model.Receipt{}, ErrReceiptNotFound
	}
	return r, nil
}

// Reset drops every stored receipt. Tests use it for isolation.
func (s *Store) Reset() {
	s.mu.Lock()
	s.receipts = make(map[string]model.Receipt)
	s.mu.Unlock()
}
