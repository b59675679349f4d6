package services

import (
	"context"

	"github.com/ArowuTest/alc-results-api/internal/models"
)

// ResultsAPI is the upstream winning numbers API. *alcapi.Client implements it.
type ResultsAPI interface {
	GetLatest(ctx context.Context) ([]models.DrawData, error)
	GetLatestForGame(ctx context.Context, game models.Game) ([]models.DrawData, error)
	GetDrawDates(ctx context.Context, game models.Game) ([]models.DrawDate, error)
	GetDraw(ctx context.Context, game models.Game, date string) ([]models.DrawData, error)
}

// DrawService defines the interface for draw-related operations
type DrawService interface {
	// GetLatest retrieves the latest normalized draw of every game
	GetLatest(ctx context.Context) ([]models.DrawData, error)

	// GetLatestForGame retrieves the latest normalized draw of one game
	GetLatestForGame(ctx context.Context, game models.Game) (*models.DrawData, error)

	// GetDrawDates retrieves the available YYYY-MM-DD draw dates of a game, most recent first
	GetDrawDates(ctx context.Context, game models.Game) ([]string, error)

	// GetDrawByDate retrieves the normalized draw of a game on one of its available dates
	GetDrawByDate(ctx context.Context, game models.Game, date string) (*models.DrawData, error)

	// GetRecentDraws retrieves the count most recent normalized draws of a game, most recent first
	GetRecentDraws(ctx context.Context, game models.Game, count int) ([]models.DrawData, error)
}
