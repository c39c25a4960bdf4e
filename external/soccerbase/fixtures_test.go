package soccerbase

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/club-careers/internal/platform/logging"
	"github.com/riskibarqy/club-careers/internal/platform/resilience"
)

const seasonSelect = `<select id="statsSeasonSelectTop">
  <option value="">Select season</option>
  <option value="155">2023/24</option>
  <option value="154">2022/23</option>
</select>`

const seasonSelectHTML = `<html><body>` + seasonSelect + `</body></html>`

func squadHTML(rows ...string) string {
	out := `<html><body>` + seasonSelect + `<table class="center"><thead><tr><th>Player</th><th>Apps</th></tr></thead><tbody>`
	for _, row := range rows {
		out += row
	}
	return out + `</tbody></table></body></html>`
}

func squadRow(id, name string) string {
	return fmt.Sprintf(`<tr><td class="first"><a href="/players/player.sd?player_id=%s">%s</a> (Midfielder)</td><td>10</td></tr>`, id, name)
}

const careerHTML = `<html><body>
<table><tr><th>Stats</th></tr><tr><td>ignored</td></tr></table>
<table class="career">
  <thead><tr><th>CLUB</th><th>FROM</th><th>TO</th><th>FEE</th><th>APPS</th></tr></thead>
  <tbody>
    <tr><td>Rivals FC</td><td>1 Jul, 2022</td><td></td><td>£1.2m</td><td>20</td></tr>
    <tr><td>Tranmere</td><td>15 Aug, 2019</td><td>30 Jun, 2022</td><td>Free</td><td>80</td></tr>
    <tr><td>Everton</td><td>sometime</td><td>14 Aug, 2019</td><td>Trainee</td><td>0</td></tr>
    <tr><td>Total</td><td></td><td></td><td></td><td>100</td></tr>
  </tbody>
</table>
</body></html>`

func newTestClient(t *testing.T, srv *httptest.Server, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	return NewClient(ClientConfig{
		HTTPClient:       srv.Client(),
		BaseURL:          srv.URL,
		TeamID:           2598,
		SeasonID:         155,
		Timeout:          2 * time.Second,
		MaxRetries:       0,
		RetryWait:        time.Millisecond,
		DirectoryWorkers: 4,
		Logger:           logging.NewNop(),
		CircuitBreaker:   breaker,
	})
}

type siteStub struct {
	seasons map[string]string
	players map[string]string
	hits    atomic.Int32
}

func (s *siteStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	var (
		body string
		ok   bool
	)
	switch r.URL.Path {
	case teamPath:
		body, ok = s.seasons[r.URL.Query().Get("season_id")]
	case playerPath:
		body, ok = s.players[r.URL.Query().Get("player_id")]
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}
