package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ArowuTest/alc-results-api/internal/apierror"
	"github.com/ArowuTest/alc-results-api/internal/models"
	"github.com/ArowuTest/alc-results-api/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

// DrawServiceImpl serves draw queries from the upstream results API
type DrawServiceImpl struct {
	api    ResultsAPI
	logger *zap.Logger
}

// NewDrawService creates a new DrawServiceImpl
func NewDrawService(api ResultsAPI, logger *zap.Logger) *DrawServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DrawServiceImpl{
		api:    api,
		logger: logger.Named("draws"),
	}
}

// GetLatest retrieves the latest draw of every game
func (s *DrawServiceImpl) GetLatest(ctx context.Context) ([]models.DrawData, error) {
	draws, err := s.api.GetLatest(ctx)
	if err != nil {
		return nil, upstreamError(err)
	}
	return NormalizeDraws(draws)
}

// GetLatestForGame retrieves the latest draw of a game
func (s *DrawServiceImpl) GetLatestForGame(ctx context.Context, game models.Game) (*models.DrawData, error) {
	draws, err := s.api.GetLatestForGame(ctx, game)
	if err != nil {
		return nil, upstreamError(err)
	}
	if len(draws) == 0 {
		return nil, apierror.WithStatus(http.StatusNotFound, fmt.Sprintf("No %s draw found.", game))
	}
	draw, err := NormalizeDraw(draws[0])
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// GetDrawDates retrieves the draw dates of a game as YYYY-MM-DD strings
func (s *DrawServiceImpl) GetDrawDates(ctx context.Context, game models.Game) ([]string, error) {
	raw, err := s.api.GetDrawDates(ctx, game)
	if err != nil {
		return nil, upstreamError(err)
	}
	dates := make([]string, len(raw))
	for i, d := range raw {
		if dates[i], err = utils.CalendarDate(d.DrawDate); err != nil {
			return nil, err
		}
	}
	return dates, nil
}

// GetDrawByDate retrieves the draw of a game on date, which must be one of its draw dates
func (s *DrawServiceImpl) GetDrawByDate(ctx context.Context, game models.Game, date string) (*models.DrawData, error) {
	dates, err := s.GetDrawDates(ctx, game)
	if err != nil {
		return nil, err
	}
	if !contains(dates, date) {
		return nil, apierror.New("Invalid date! Please use one of: " + strings.Join(dates, ", "))
	}

	draw, err := s.fetchDraw(ctx, game, date)
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// GetRecentDraws retrieves the count most recent draws of a game. One upstream
// request is issued per date, all at once; any failure fails the whole call.
func (s *DrawServiceImpl) GetRecentDraws(ctx context.Context, game models.Game, count int) ([]models.DrawData, error) {
	if count < 0 {
		return nil, apierror.New("Invalid draw count! Please use a non-negative integer value.")
	}

	dates, err := s.GetDrawDates(ctx, game)
	if err != nil {
		return nil, err
	}
	if len(dates) < count {
		return nil, apierror.Newf("Invalid draw count! There are %d %s draws available.", len(dates), game)
	}

	dates = dates[:count]
	draws := make([]models.DrawData, len(dates))

	var g errgroup.Group
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			draw, err := s.fetchDraw(ctx, game, date)
			if err != nil {
				return err
			}
			draws[i] = draw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("ranged fetch failed",
			zap.String("game", game.String()),
			zap.Int("count", count),
			zap.Error(err),
		)
		return nil, err
	}

	return draws, nil
}

func (s *DrawServiceImpl) fetchDraw(ctx context.Context, game models.Game, date string) (models.DrawData, error) {
	draws, err := s.api.GetDraw(ctx, game, date)
	if err != nil {
		return models.DrawData{}, upstreamError(err)
	}
	if len(draws) == 0 {
		return models.DrawData{}, apierror.WithStatus(http.StatusNotFound, fmt.Sprintf("No %s draw found for %s.", game, date))
	}
	return NormalizeDraw(draws[0])
}

// upstreamError marks a failed upstream call with the default client-error status
func upstreamError(err error) error {
	return apierror.Wrap(apierror.DefaultStatus, err)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
