package soccerbase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
	"github.com/riskibarqy/club-careers/internal/platform/cache"
	"github.com/riskibarqy/club-careers/internal/platform/logging"
	"github.com/riskibarqy/club-careers/internal/platform/resilience"
	"github.com/riskibarqy/club-careers/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL          = "https://www.soccerbase.com"
	defaultTeamID           = 2598
	defaultSeasonID         = 155
	defaultDirectoryWorkers = 8
	maxPageBytes            = 4 << 20

	teamPath   = "/teams/team.sd"
	playerPath = "/players/player.sd"
)

var (
	errTransient = crerr.New("soccerbase transient failure")
	// ErrPageNotFound is returned for a 404; it never trips the breaker.
	ErrPageNotFound = crerr.New("soccerbase page not found")
)

type ClientConfig struct {
	HTTPClient       *http.Client
	BaseURL          string
	TeamID           int
	SeasonID         int
	Timeout          time.Duration
	MaxRetries       int
	RetryWait        time.Duration
	DirectoryWorkers int
	CacheTTL         time.Duration
	Logger           *logging.Logger
	CircuitBreaker   resilience.CircuitBreakerConfig
}

// Client scrapes soccerbase.com. It serves as both the player directory and
// the career feed.
type Client struct {
	http             *resty.Client
	baseURL          string
	teamID           int
	seasonID         int
	directoryWorkers int
	logger           *logging.Logger
	breaker          *resilience.CircuitBreaker
	circuitEnabled   bool
	pages            *cache.Store[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("soccerbase")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	retryWait := cfg.RetryWait
	if retryWait <= 0 {
		retryWait = time.Second
	}

	rc := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "text/html").
		SetRetryCount(max(cfg.MaxRetries, 0)).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryWait * 8).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp != nil && isRetryableStatus(resp.StatusCode())
		})

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreakerFromConfig(breakerCfg)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("soccerbase circuit breaker state changed", "from", from, "to", to)
	})

	workers := cfg.DirectoryWorkers
	if workers < 1 {
		workers = defaultDirectoryWorkers
	}

	return &Client{
		http:             rc,
		baseURL:          baseURL,
		teamID:           pickPositive(cfg.TeamID, defaultTeamID),
		seasonID:         pickPositive(cfg.SeasonID, defaultSeasonID),
		directoryWorkers: workers,
		logger:           logger,
		breaker:          breaker,
		circuitEnabled:   breakerCfg.Enabled,
		pages:            cache.NewStore[[]byte](cfg.CacheTTL),
	}
}

func (c *Client) seasonURL(seasonID string) string {
	values := url.Values{}
	values.Set("team_id", strconv.Itoa(c.teamID))
	values.Set("teamTabs", "stats")
	values.Set("season_id", seasonID)
	return c.baseURL + teamPath + "?" + values.Encode()
}

func (c *Client) playerURL(playerID string) string {
	return c.baseURL + playerPath + "?player_id=" + url.QueryEscape(playerID)
}

// absoluteURL resolves a page-relative href against the site root.
func (c *Client) absoluteURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return c.baseURL + href
	}
	if ref.IsAbs() {
		return ref.String()
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return c.baseURL + href
	}
	return base.ResolveReference(ref).String()
}

// fetchPage returns the body of a team or season page, served from cache when
// the same URL was already loaded during this run.
func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	return c.pages.GetOrLoad(ctx, pageURL, func(ctx context.Context) ([]byte, error) {
		return c.loadPage(ctx, pageURL)
	})
}

// loadPage fetches one page through the circuit breaker without caching it.
// Profile pages are read once per run and go through here directly.
func (c *Client) loadPage(ctx context.Context, pageURL string) ([]byte, error) {
	if !c.circuitEnabled {
		return c.get(ctx, pageURL)
	}

	var body []byte
	err := c.breaker.Execute(func() error {
		var getErr error
		body, getErr = c.get(ctx, pageURL)
		return getErr
	}, isCircuitFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "soccerbase circuit breaker rejected request", "state", c.breaker.State())
		return nil, crerr.Wrapf(usecase.ErrDependencyUnavailable, "soccerbase is temporarily unavailable")
	}
	return body, err
}

func (c *Client) get(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "soccerbase request failed", "url", pageURL, "error", err)
		return nil, crerr.Mark(crerr.Wrapf(err, "get %s", pageURL), errTransient)
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusNotFound:
		return nil, crerr.Wrapf(ErrPageNotFound, "get %s", pageURL)
	case isRetryableStatus(status):
		c.logger.WarnContext(ctx, "soccerbase request failed", "url", pageURL, "status", status)
		return nil, crerr.Mark(crerr.Newf("get %s: status=%d", pageURL, status), errTransient)
	case !resp.IsSuccess():
		return nil, crerr.Newf("get %s: status=%d body=%s", pageURL, status, abbreviateBody(resp.Body()))
	}

	body := resp.Body()
	if len(body) > maxPageBytes {
		return nil, crerr.Newf("get %s: page exceeds %d bytes", pageURL, maxPageBytes)
	}
	return body, nil
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func pickPositive(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
