package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

type portfolioStorage struct {
	store  *Store
	logger *common.Logger
}

var _ interfaces.PortfolioStorage = (*portfolioStorage)(nil)

// NewPortfolioStorage creates a new PortfolioStorage backed by BadgerHold.
func NewPortfolioStorage(store *Store, logger *common.Logger) interfaces.PortfolioStorage {
	return &portfolioStorage{store: store, logger: logger}
}

func (s *portfolioStorage) SavePortfolio(_ context.Context, portfolio *models.SavedPortfolio) error {
	portfolio.UpdatedAt = time.Now()
	if portfolio.CreatedAt.IsZero() {
		portfolio.CreatedAt = portfolio.UpdatedAt
	}
	if portfolio.ID == "" {
		portfolio.ID = uuid.NewString()
	}

	if err := s.store.db.Upsert(portfolio.ID, portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	s.logger.Debug().Str("id", portfolio.ID).Str("name", portfolio.Name).Msg("Portfolio saved")
	return nil
}

func (s *portfolioStorage) GetPortfolio(_ context.Context, id string) (*models.SavedPortfolio, error) {
	var portfolio models.SavedPortfolio
	err := s.store.db.Get(id, &portfolio)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("portfolio '%s': %w", id, interfaces.ErrPortfolioNotFound)
		}
		return nil, fmt.Errorf("failed to get portfolio '%s': %w", id, err)
	}
	return &portfolio, nil
}

func (s *portfolioStorage) ListPortfolios(_ context.Context) ([]string, error) {
	var portfolios []models.SavedPortfolio
	if err := s.store.db.Find(&portfolios, nil); err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	ids := make([]string, len(portfolios))
	for i, p := range portfolios {
		ids[i] = p.ID
	}
	return ids, nil
}

func (s *portfolioStorage) DeletePortfolio(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.SavedPortfolio{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete portfolio '%s': %w", id, err)
	}
	s.logger.Debug().Str("id", id).Msg("Portfolio deleted")
	return nil
}
