package handlers

import (
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/ArowuTest/alc-results-api/internal/apierror"
	"github.com/ArowuTest/alc-results-api/internal/models"
	"github.com/ArowuTest/alc-results-api/internal/services"
	"github.com/gin-gonic/gin"
)

// datePattern decides whether the last segment of /draw/:game/:param is a date or a count
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// GetLatest handles GET /latest
func (h *DrawHandler) GetLatest(c *gin.Context) {
	draws, err := h.drawService.GetLatest(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, draws)
}

// GetLatestForGame handles GET /latest/:game
func (h *DrawHandler) GetLatestForGame(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	draw, err := h.drawService.GetLatestForGame(c.Request.Context(), game)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, draw)
}

// GetDrawDates handles GET /draw_dates/:game
func (h *DrawHandler) GetDrawDates(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	dates, err := h.drawService.GetDrawDates(c.Request.Context(), game)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

// GetDraw handles GET /draw/:game/:param, where param is a YYYY-MM-DD date or a draw count
func (h *DrawHandler) GetDraw(c *gin.Context) {
	if datePattern.MatchString(c.Param("param")) {
		h.getDrawByDate(c, c.Param("param"))
		return
	}
	h.getRecentDraws(c, c.Param("param"))
}

// GetDraws handles GET /draws/:game/:count
func (h *DrawHandler) GetDraws(c *gin.Context) {
	h.getRecentDraws(c, c.Param("count"))
}

func (h *DrawHandler) getDrawByDate(c *gin.Context, date string) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	draw, err := h.drawService.GetDrawByDate(c.Request.Context(), game, date)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, draw)
}

func (h *DrawHandler) getRecentDraws(c *gin.Context, rawCount string) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	count, err := parseCount(rawCount)
	if err != nil {
		_ = c.Error(err)
		return
	}
	draws, err := h.drawService.GetRecentDraws(c.Request.Context(), game, count)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, draws)
}

// gameParam validates the :game path parameter, recording an error when it is not a known game
func gameParam(c *gin.Context) (models.Game, bool) {
	game, ok := models.ParseGame(c.Param("game"))
	if !ok {
		_ = c.Error(InvalidGameError())
		return "", false
	}
	return game, true
}

// InvalidGameError lists every accepted game
func InvalidGameError() *apierror.Error {
	return apierror.New("Invalid game! Please use one of: " + models.GameList() + ".")
}

// parseCount accepts any finite whole number, including forms such as "3.0".
// Values beyond the int range are capped at math.MaxInt.
func parseCount(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, apierror.New("Invalid draw count! Please use an integer value.")
	}
	if f < 0 {
		return 0, apierror.New("Invalid draw count! Please use a non-negative integer value.")
	}
	if f >= math.MaxInt {
		return math.MaxInt, nil
	}
	return int(f), nil
}
