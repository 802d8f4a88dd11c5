package interfaces

import (
	"context"
	"errors"

	"github.com/stratahq/strata/internal/models"
)

// ErrPortfolioNotFound is returned when a saved portfolio ID does not exist.
var ErrPortfolioNotFound = errors.New("portfolio not found")

// PortfolioStorage persists saved portfolios
type PortfolioStorage interface {
	// SavePortfolio stores a portfolio, assigning timestamps
	SavePortfolio(ctx context.Context, portfolio *models.SavedPortfolio) error

	// GetPortfolio retrieves a portfolio by ID
	GetPortfolio(ctx context.Context, id string) (*models.SavedPortfolio, error)

	// ListPortfolios returns the IDs of all saved portfolios
	ListPortfolios(ctx context.Context) ([]string, error)

	// DeletePortfolio removes a portfolio; missing IDs are not an error
	DeletePortfolio(ctx context.Context, id string) error
}
