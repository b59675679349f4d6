package alcapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ArowuTest/alc-results-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	codes []int
}

func (r *recordingObserver) ObserveUpstream(endpoint string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, endpoint)
	r.codes = append(r.codes, status)
}

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const sampleDraw = `[{
	"draw": {"providerdrawId": "42", "bonus_number": "7", "prize_payouts": [], "tag": "123456", "tag_prize_payouts": [], "winning_numbers": ["1","2","3","4","5","6"]},
	"draw_date": "/Date(1622255399000-0300)/",
	"game": "Lotto649",
	"guaranteed_draws": [],
	"last_edit_date": "/Date(1622255399000-0300)/",
	"next_draw": null,
	"promotional_draws": [],
	"standard_balls": 6,
	"jackpot_balls": 1,
	"jackpot_ball_drawn": false
}]`

func TestClient_GetLatestForGame(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/latest/Lotto649": sampleDraw})
	obs := &recordingObserver{}
	client := NewClient(srv.URL+"/", WithObserver(obs))

	draws, err := client.GetLatestForGame(context.Background(), models.GameLotto649)
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.JSONEq(t, `"Lotto649"`, string(draws[0].Extra["game"]))
	var results struct {
		WinningNumbers []string `json:"winning_numbers"`
	}
	require.NoError(t, json.Unmarshal(draws[0].Extra["draw"], &results))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, results.WinningNumbers)
	assert.Nil(t, draws[0].NextDraw)
	assert.Equal(t, []string{EndpointLatestForGame}, obs.calls)
	assert.Equal(t, []int{http.StatusOK}, obs.codes)
}

func TestClient_GetLatest(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/latest": sampleDraw})
	draws, err := NewClient(srv.URL).GetLatest(context.Background())
	require.NoError(t, err)
	assert.Len(t, draws, 1)
}

func TestClient_GetDraw(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/draw/Lotto649/2021-05-28": sampleDraw})
	draws, err := NewClient(srv.URL).GetDraw(context.Background(), models.GameLotto649, "2021-05-28")
	require.NoError(t, err)
	assert.Contains(t, string(draws[0].Extra["draw"]), `"providerdrawId": "42"`)
}

func TestClient_GetDrawDates(t *testing.T) {
	t.Run("Envelope", func(t *testing.T) {
		srv := newTestServer(t, map[string]string{
			"/draw_dates/Bucko": `{"draw_dates":[{"draw_date":"/Date(1622255399000-0300)/"},{"draw_date":"/Date(1622082599000-0300)/"}]}`,
		})
		dates, err := NewClient(srv.URL).GetDrawDates(context.Background(), models.GameBucko)
		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, "/Date(1622255399000-0300)/", dates[0].DrawDate)
	})

	t.Run("BareArray", func(t *testing.T) {
		srv := newTestServer(t, map[string]string{"/draw_dates/Bucko": `["2024-01-01","2024-01-03"]`})
		dates, err := NewClient(srv.URL).GetDrawDates(context.Background(), models.GameBucko)
		require.NoError(t, err)
		assert.Equal(t, []models.DrawDate{{DrawDate: "2024-01-01"}, {DrawDate: "2024-01-03"}}, dates)
	})
}

func TestClient_StatusError(t *testing.T) {
	srv := newTestServer(t, map[string]string{})
	_, err := NewClient(srv.URL).GetLatest(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Request failed with status code 404", err.Error())
}

func TestClient_DecodeError(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/latest": `{not json`})
	_, err := NewClient(srv.URL).GetLatest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	obs := &recordingObserver{}
	_, err := NewClient(url, WithObserver(obs)).GetLatest(context.Background())
	require.Error(t, err)
	assert.Equal(t, []int{0}, obs.codes)
}

func TestNewClient_Timeout(t *testing.T) {
	shared := &http.Client{}
	c := NewClient("", WithHTTPClient(shared), WithTimeout(2*time.Second))
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, 2*time.Second, c.client.Timeout)
	assert.Zero(t, shared.Timeout)

	// Option order does not matter.
	c = NewClient("", WithTimeout(time.Second), WithHTTPClient(shared))
	assert.Equal(t, time.Second, c.client.Timeout)
	assert.Zero(t, shared.Timeout)

	assert.NotPanics(t, func() {
		c = NewClient("", WithHTTPClient(nil), WithTimeout(time.Second))
	})
	assert.Equal(t, time.Second, c.client.Timeout)

	c = NewClient("", WithHTTPClient(shared))
	assert.Same(t, shared, c.client)
}
