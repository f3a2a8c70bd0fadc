package store

import (
	"github.com/budgetcopain/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionPatch is a partial update of a transaction. Only fields
// that are set are changed.
type TransactionPatch struct {
	Amount     *decimal.Decimal          `json:"amount"`
	Type       *models.TransactionType   `json:"type"`
	CategoryID *string                   `json:"categoryId"`
	Date       *string                   `json:"date"`
	Note       *string                   `json:"note"`
	Source     *models.TransactionSource `json:"source"`
}

func (s *Store) validateTransaction(transaction models.Transaction) error {
	if !transaction.Amount.IsPositive() {
		return models.ErrAmountNotPositive
	}
	if !transaction.Type.Valid() {
		return models.ErrTransactionType
	}
	if !transaction.Source.Valid() {
		return models.ErrTransactionSource
	}
	if transaction.Date == "" {
		return models.ErrTransactionDateEmpty
	}
	if _, ok := s.state.Category(transaction.CategoryID); !ok {
		return models.ErrCategoryNotFound
	}
	return nil
}

// Transactions returns all transactions, newest first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]models.Transaction, len(s.state.Transactions))
	copy(transactions, s.state.Transactions)
	return transactions
}

// Transaction returns the transaction with the given ID.
func (s *Store) Transaction(id string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, transaction := range s.state.Transactions {
		if transaction.ID == id {
			return transaction, nil
		}
	}

	return models.Transaction{}, models.ErrTransactionNotFound
}

// AddTransaction validates a transaction and prepends it to the list so
// the newest transaction always comes first. An empty ID is replaced
// with a generated one, an empty source defaults to manual.
func (s *Store) AddTransaction(transaction models.Transaction) (models.Transaction, error) {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.Source == "" {
		transaction.Source = models.SourceManual
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.validateTransaction(transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	s.state.Transactions = append([]models.Transaction{transaction}, s.state.Transactions...)
	s.persist()

	return transaction, nil
}

// UpdateTransaction applies a partial update to the transaction with
// the given ID. The updated transaction keeps its position in the list.
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, transaction := range s.state.Transactions {
		if transaction.ID != id {
			continue
		}

		if patch.Amount != nil {
			transaction.Amount = *patch.Amount
		}
		if patch.Type != nil {
			transaction.Type = *patch.Type
		}
		if patch.CategoryID != nil {
			transaction.CategoryID = *patch.CategoryID
		}
		if patch.Date != nil {
			transaction.Date = *patch.Date
		}
		if patch.Note != nil {
			transaction.Note = *patch.Note
		}
		if patch.Source != nil {
			transaction.Source = *patch.Source
		}

		err := s.validateTransaction(transaction)
		if err != nil {
			return models.Transaction{}, err
		}

		s.state.Transactions[i] = transaction
		s.persist()

		return transaction, nil
	}

	return models.Transaction{}, models.ErrTransactionNotFound
}

// DeleteTransaction removes the transaction with the given ID.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, transaction := range s.state.Transactions {
		if transaction.ID != id {
			continue
		}

		s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
		s.persist()

		return nil
	}

	return models.ErrTransactionNotFound
}
