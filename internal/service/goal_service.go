package service

import (
	"context"
	"strings"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// GoalService handles savings goal business logic
type GoalService struct {
	goalRepo domain.GoalRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

func sampleGoals() []*domain.Goal {
	now := time.Now().UTC()
	return []*domain.Goal{
		{
			Name:     "New Car",
			Saved:    decimal.NewFromInt(15000),
			Target:   decimal.NewFromInt(25000),
			Color:    "#3F51B5",
			Icon:     "directions_car",
			Deadline: now.AddDate(1, 0, 0),
		},
		{
			Name:     "Vacation",
			Saved:    decimal.NewFromInt(2000),
			Target:   decimal.NewFromInt(5000),
			Color:    "#009688",
			Icon:     "flight",
			Deadline: now.AddDate(0, 6, 0),
		},
	}
}

// GetGoals lists all goals, seeding samples when the store is empty
func (s *GoalService) GetGoals(ctx context.Context) ([]*domain.Goal, error) {
	goals, err := s.goalRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return s.goalRepo.CreateMany(ctx, sampleGoals())
	}
	return goals, nil
}

// GoalInput holds the input for creating or updating a goal
type GoalInput struct {
	Name     string
	Saved    decimal.Decimal
	Target   decimal.Decimal
	Deadline time.Time
	Color    string
	Icon     string
	Note     *string
}

func (s *GoalService) validate(input GoalInput) (GoalInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, domain.ErrNameRequired
	}
	if len(input.Name) > domain.MaxNameLength {
		return input, domain.ErrNameTooLong
	}
	if input.Target.LessThanOrEqual(decimal.Zero) {
		return input, domain.ErrInvalidAmount
	}
	return input, nil
}

// CreateGoal creates a new goal with validation
func (s *GoalService) CreateGoal(ctx context.Context, input GoalInput) (*domain.Goal, error) {
	input, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	return s.goalRepo.Create(ctx, &domain.Goal{
		Name:     input.Name,
		Saved:    input.Saved,
		Target:   input.Target,
		Deadline: input.Deadline,
		Color:    input.Color,
		Icon:     input.Icon,
		Note:     input.Note,
	})
}

// UpdateGoal replaces a goal's fields
func (s *GoalService) UpdateGoal(ctx context.Context, id string, input GoalInput) (*domain.Goal, error) {
	input, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	return s.goalRepo.Update(ctx, id, &domain.Goal{
		Name:     input.Name,
		Saved:    input.Saved,
		Target:   input.Target,
		Deadline: input.Deadline,
		Color:    input.Color,
		Icon:     input.Icon,
		Note:     input.Note,
	})
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	return s.goalRepo.Delete(ctx, id)
}
