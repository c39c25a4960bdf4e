package soccerbase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-careers/internal/domain/career"
)

var _ career.Feed = (*Client)(nil)

// ErrCareerTableMissing means the profile page loaded but had no career table.
var ErrCareerTableMissing = crerr.New("career table not found")

func (c *Client) FetchCareer(ctx context.Context, player career.PlayerIdentity) ([]career.RawStint, error) {
	if err := player.Validate(); err != nil {
		return nil, crerr.Wrap(err, "fetch career")
	}

	pageURL := strings.TrimSpace(player.ProfileURL)
	if pageURL == "" {
		pageURL = c.playerURL(player.ID)
	}

	body, err := c.loadPage(ctx, pageURL)
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch career player_id=%s", player.ID)
	}
	doc, err := parseDocument(body)
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch career player_id=%s", player.ID)
	}

	rows, found := parseCareer(doc)
	if !found {
		return nil, crerr.Wrapf(ErrCareerTableMissing, "player_id=%s", player.ID)
	}
	return rows, nil
}
