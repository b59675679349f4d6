package services

import (
	"fmt"

	"github.com/ArowuTest/alc-results-api/internal/models"
	"github.com/ArowuTest/alc-results-api/internal/utils"
)

// NormalizeDraw returns a copy of draw with draw_date, last_edit_date and
// next_draw.draw_date converted to ISO 8601. The input is left untouched.
func NormalizeDraw(draw models.DrawData) (models.DrawData, error) {
	out := draw.Clone()

	var err error
	if out.DrawDate, err = utils.DateAsISOString(draw.DrawDate); err != nil {
		return models.DrawData{}, fmt.Errorf("draw_date: %w", err)
	}
	if out.LastEditDate, err = utils.DateAsISOString(draw.LastEditDate); err != nil {
		return models.DrawData{}, fmt.Errorf("last_edit_date: %w", err)
	}
	if out.NextDraw != nil {
		if out.NextDraw.DrawDate, err = utils.DateAsISOString(draw.NextDraw.DrawDate); err != nil {
			return models.DrawData{}, fmt.Errorf("next_draw.draw_date: %w", err)
		}
	}
	return out, nil
}

// NormalizeDraws applies NormalizeDraw to every element, preserving order
func NormalizeDraws(draws []models.DrawData) ([]models.DrawData, error) {
	out := make([]models.DrawData, len(draws))
	for i, d := range draws {
		n, err := NormalizeDraw(d)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
