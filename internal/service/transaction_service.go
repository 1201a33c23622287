package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// TransactionService is the ledger posting engine. Every mutation applies
// the transaction's balance effect to one or two accounts inside the same
// unit of work as the transaction write, so the two can never diverge.
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	accountRepo     domain.AccountRepository
	categoryRepo    domain.CategoryRepository
	uow             domain.UnitOfWork
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, accountRepo domain.AccountRepository, categoryRepo domain.CategoryRepository, uow domain.UnitOfWork) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		uow:             uow,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *TransactionService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	Amount      decimal.Decimal
	Type        domain.TransactionType
	AccountID   string
	ToAccountID *string
	CategoryID  *string
	Description *string
	Tags        []string
	Date        *time.Time
}

// validatePosting checks the fields a posting depends on. Amount is a
// magnitude and must be strictly positive; a transfer needs a destination.
func (s *TransactionService) validatePosting(ctx context.Context, amount decimal.Decimal, txType domain.TransactionType, accountID string, toAccountID *string, categoryID *string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	switch txType {
	case domain.TransactionTypeIncome, domain.TransactionTypeExpense:
	case domain.TransactionTypeTransfer:
		if toAccountID == nil || *toAccountID == "" {
			return domain.ErrDestinationRequired
		}
	default:
		return domain.ErrInvalidTransactionType
	}

	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return domain.ErrAccountNotFound
	}
	if txType == domain.TransactionTypeTransfer {
		if _, err := s.accountRepo.GetByID(ctx, *toAccountID); err != nil {
			return domain.ErrAccountNotFound
		}
	}

	if categoryID != nil && *categoryID != "" {
		if _, err := s.categoryRepo.GetByID(ctx, *categoryID); err != nil {
			return domain.ErrCategoryNotFound
		}
	}

	return nil
}

// applyBalanceEffect applies a transaction's balance deltas with the given
// sign: +1 posts the effect, -1 reverses it.
func (s *TransactionService) applyBalanceEffect(ctx context.Context, t *domain.Transaction, sign int64) error {
	amount := t.Amount.Mul(decimal.NewFromInt(sign))

	switch t.Type {
	case domain.TransactionTypeExpense:
		return s.accountRepo.IncrementBalance(ctx, t.AccountID, amount.Neg())
	case domain.TransactionTypeIncome:
		return s.accountRepo.IncrementBalance(ctx, t.AccountID, amount)
	case domain.TransactionTypeTransfer:
		if t.ToAccountID == nil {
			return domain.ErrDestinationRequired
		}
		if err := s.accountRepo.IncrementBalance(ctx, t.AccountID, amount.Neg()); err != nil {
			return err
		}
		return s.accountRepo.IncrementBalance(ctx, *t.ToAccountID, amount)
	default:
		return domain.ErrInvalidTransactionType
	}
}

// wrapPosting classifies a unit-of-work failure. Validation and not-found
// sentinels pass through untouched; anything else becomes a posting error
// carrying the original message. Either way the unit of work has already
// been rolled back.
func wrapPosting(err error) error {
	for _, sentinel := range []error{
		domain.ErrTransactionNotFound,
		domain.ErrAccountNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrDestinationRequired,
		domain.ErrInvalidAmount,
		domain.ErrInvalidTransactionType,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrPostingFailed, err)
}

// CreateTransaction validates the input, then writes the transaction record
// and its balance deltas in one atomic unit of work.
func (s *TransactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := s.validatePosting(ctx, input.Amount, input.Type, input.AccountID, input.ToAccountID, input.CategoryID); err != nil {
		return nil, err
	}

	var description *string
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed != "" {
			if len(trimmed) > domain.MaxDescriptionLength {
				return nil, domain.ErrNameTooLong
			}
			description = &trimmed
		}
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	toAccountID := input.ToAccountID
	if input.Type != domain.TransactionTypeTransfer {
		// Destination only means something for transfers.
		toAccountID = nil
	}

	transaction := &domain.Transaction{
		Amount:      input.Amount,
		Type:        input.Type,
		AccountID:   input.AccountID,
		ToAccountID: toAccountID,
		CategoryID:  input.CategoryID,
		Description: description,
		Tags:        input.Tags,
		Date:        date,
	}

	var created *domain.Transaction
	err := s.uow.Run(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.transactionRepo.Create(ctx, transaction)
		if err != nil {
			return err
		}
		return s.applyBalanceEffect(ctx, created, 1)
	})
	if err != nil {
		return nil, wrapPosting(err)
	}

	s.publishEvent(websocket.TransactionCreated(created))
	return created, nil
}

// mergePatch resolves a partial patch against the stored transaction into
// the full replacement values.
func mergePatch(existing *domain.Transaction, patch *domain.TransactionPatch) *domain.UpdateTransactionData {
	data := &domain.UpdateTransactionData{
		Amount:      existing.Amount,
		Type:        existing.Type,
		AccountID:   existing.AccountID,
		ToAccountID: existing.ToAccountID,
		CategoryID:  existing.CategoryID,
		Description: existing.Description,
		Tags:        existing.Tags,
		Date:        existing.Date,
	}
	if patch.Amount != nil {
		data.Amount = *patch.Amount
	}
	if patch.Type != nil {
		data.Type = *patch.Type
	}
	if patch.AccountID != nil {
		data.AccountID = *patch.AccountID
	}
	if patch.ToAccountID != nil {
		data.ToAccountID = patch.ToAccountID
	}
	if patch.CategoryID != nil {
		data.CategoryID = patch.CategoryID
	}
	if patch.Description != nil {
		data.Description = patch.Description
	}
	if patch.Tags != nil {
		data.Tags = patch.Tags
	}
	if patch.Date != nil {
		data.Date = *patch.Date
	}
	return data
}

// UpdateTransaction patches a transaction, reversing the old balance effect
// and posting the new one inside a single unit of work. Reverting then
// reapplying handles arbitrary changes uniformly, including a transaction
// changing type or accounts. An empty patch nets to zero.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, patch *domain.TransactionPatch) (*domain.Transaction, error) {
	var updated *domain.Transaction
	err := s.uow.Run(ctx, func(ctx context.Context) error {
		existing, err := s.transactionRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.applyBalanceEffect(ctx, existing, -1); err != nil {
			return err
		}

		data := mergePatch(existing, patch)
		if err := s.validatePosting(ctx, data.Amount, data.Type, data.AccountID, data.ToAccountID, data.CategoryID); err != nil {
			return err
		}
		if data.Type != domain.TransactionTypeTransfer {
			data.ToAccountID = nil
		}

		updated, err = s.transactionRepo.Update(ctx, id, data)
		if err != nil {
			return err
		}
		return s.applyBalanceEffect(ctx, updated, 1)
	})
	if err != nil {
		return nil, wrapPosting(err)
	}

	s.publishEvent(websocket.TransactionUpdated(updated))
	return updated, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect
// in one unit of work.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	var deleted *domain.Transaction
	err := s.uow.Run(ctx, func(ctx context.Context) error {
		existing, err := s.transactionRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.applyBalanceEffect(ctx, existing, -1); err != nil {
			return err
		}
		deleted = existing
		return s.transactionRepo.Delete(ctx, id)
	})
	if err != nil {
		return wrapPosting(err)
	}

	s.publishEvent(websocket.TransactionDeleted(deleted))
	return nil
}

// GetTransactions retrieves transactions with optional filters and pagination
func (s *TransactionService) GetTransactions(ctx context.Context, filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	return s.transactionRepo.Find(ctx, filters)
}

// GetTransactionByID retrieves a transaction by ID
func (s *TransactionService) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}
