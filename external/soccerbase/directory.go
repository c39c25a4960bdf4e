package soccerbase

import (
	"context"
	"sort"
	"strconv"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-careers/internal/domain/career"
	"github.com/sourcegraph/conc/pool"
)

var _ career.Directory = (*Client)(nil)

// ListSeasons returns the season ids offered by the seed season's stats page.
func (c *Client) ListSeasons(ctx context.Context) ([]string, error) {
	seedURL := c.seasonURL(strconv.Itoa(c.seasonID))
	body, err := c.fetchPage(ctx, seedURL)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch seed season page")
	}
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}
	return parseSeasonIDs(doc), nil
}

// ListPlayers visits every season page concurrently and merges the squads.
// A failed season page is logged and skipped; the call fails only when every
// page failed.
func (c *Client) ListPlayers(ctx context.Context) ([]career.PlayerIdentity, error) {
	seasons, err := c.ListSeasons(ctx)
	if err != nil {
		return nil, err
	}
	if len(seasons) == 0 {
		return nil, nil
	}

	p := pool.NewWithResults[[]career.PlayerIdentity]().
		WithContext(ctx).
		WithMaxGoroutines(min(c.directoryWorkers, len(seasons)))
	for _, seasonID := range seasons {
		p.Go(func(ctx context.Context) ([]career.PlayerIdentity, error) {
			squad, err := c.listSquad(ctx, seasonID)
			if err != nil {
				c.logger.WarnContext(ctx, "skip season page", "season_id", seasonID, "error", err)
				return nil, err
			}
			return squad, nil
		})
	}

	squads, err := p.Wait()
	if err != nil && len(squads) == 0 {
		return nil, crerr.Wrap(err, "fetch season pages")
	}

	players := mergeSquads(squads)
	c.logger.InfoContext(ctx, "player directory built",
		"seasons", len(seasons),
		"seasons_loaded", len(squads),
		"players", len(players),
	)
	return players, nil
}

func (c *Client) listSquad(ctx context.Context, seasonID string) ([]career.PlayerIdentity, error) {
	body, err := c.fetchPage(ctx, c.seasonURL(seasonID))
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}
	return parseSquad(doc, c.absoluteURL), nil
}

// mergeSquads flattens season squads and keeps one entry per player id.
// Output order is by name then id so runs are reproducible regardless of
// which season page finished first.
func mergeSquads(squads [][]career.PlayerIdentity) []career.PlayerIdentity {
	var all []career.PlayerIdentity
	for _, squad := range squads {
		all = append(all, squad...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})

	out := make([]career.PlayerIdentity, 0, len(all))
	seen := make(map[string]struct{}, len(all))
	for _, p := range all {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
