package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/yourusername/gridiron-edge/internal/models"
)

const espnSourceName = "espn"

// DefaultScoreboardURL is the public ESPN NFL scoreboard endpoint.
const DefaultScoreboardURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"

// espnTeamMap normalizes ESPN team abbreviations to the standard codes used
// throughout the system. ESPN still emits historical or short forms for a few
// franchises.
var espnTeamMap = map[string]string{
	"OAK": "LV",  // Oakland Raiders -> Las Vegas
	"LA":  "LAR", // ESPN sometimes uses bare LA for the Rams
	"WSH": "WAS",
}

// ESPNClient implements ScheduleSource against the ESPN scoreboard API
type ESPNClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	logger     *log.Logger
}

// espnScoreboard is the subset of the scoreboard response we consume
type espnScoreboard struct {
	Events []espnEvent `json:"events"`
}

type espnEvent struct {
	Date         string            `json:"date"`
	Status       espnStatus        `json:"status"`
	Competitions []espnCompetition `json:"competitions"`
}

type espnStatus struct {
	Type struct {
		Completed bool   `json:"completed"`
		State     string `json:"state"`
	} `json:"type"`
}

type espnCompetition struct {
	Competitors []espnCompetitor `json:"competitors"`
}

type espnCompetitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	Linescores []espnLinescore `json:"linescores"`
}

type espnLinescore struct {
	Period int     `json:"period"`
	Value  float64 `json:"value"`
}

// NewESPNClient creates a new ESPN scoreboard client
func NewESPNClient(httpClient *RateLimitedHTTPClient, baseURL string, logger *log.Logger) *ESPNClient {
	if baseURL == "" {
		baseURL = DefaultScoreboardURL
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ESPNClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Name returns the data source name
func (c *ESPNClient) Name() string {
	return espnSourceName
}

// FetchWeek retrieves all games for one regular-season week
func (c *ESPNClient) FetchWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	url := fmt.Sprintf("%s?dates=%d&seasontype=2&week=%d", c.baseURL, season, week)

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, NewDataSourceError(espnSourceName, ErrCodeNetworkError,
			fmt.Sprintf("failed to fetch week %d", week), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewDataSourceError(espnSourceName, ErrCodeNotFound,
			fmt.Sprintf("no scoreboard for season %d week %d", season, week), nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewDataSourceError(espnSourceName, ErrCodeRateLimitExceeded,
			fmt.Sprintf("rate limited fetching week %d", week), nil)
	default:
		return nil, NewDataSourceError(espnSourceName, ErrCodeServerError,
			fmt.Sprintf("unexpected status %d for week %d", resp.StatusCode, week), nil)
	}

	var scoreboard espnScoreboard
	if err := json.NewDecoder(resp.Body).Decode(&scoreboard); err != nil {
		return nil, NewDataSourceError(espnSourceName, ErrCodeInvalidData,
			"failed to decode scoreboard response", err)
	}

	games := make([]*models.Game, 0, len(scoreboard.Events))
	for _, event := range scoreboard.Events {
		game := parseEvent(event, season, week)
		if game != nil {
			games = append(games, game)
		}
	}

	c.logger.Printf("fetched %d games for season %d week %d", len(games), season, week)
	return games, nil
}

// FetchSeason retrieves all games for a regular season, week by week.
// The shared HTTP client's rate limiter paces the requests.
func (c *ESPNClient) FetchSeason(ctx context.Context, season, weeks int) ([]*models.Game, error) {
	var all []*models.Game
	for week := 1; week <= weeks; week++ {
		games, err := c.FetchWeek(ctx, season, week)
		if err != nil {
			return nil, err
		}
		all = append(all, games...)
	}
	return all, nil
}

// parseEvent maps a scoreboard event to a Game. Returns nil when the event
// is malformed or a team abbreviation is missing.
func parseEvent(event espnEvent, season, week int) *models.Game {
	if len(event.Competitions) == 0 {
		return nil
	}
	competitors := event.Competitions[0].Competitors
	if len(competitors) < 2 {
		return nil
	}

	var homeComp, awayComp *espnCompetitor
	for i := range competitors {
		if competitors[i].HomeAway == "home" {
			homeComp = &competitors[i]
		} else {
			awayComp = &competitors[i]
		}
	}
	if homeComp == nil || awayComp == nil {
		return nil
	}

	homeTeam := normalizeTeam(homeComp.Team.Abbreviation)
	awayTeam := normalizeTeam(awayComp.Team.Abbreviation)
	if homeTeam == "" || awayTeam == "" {
		return nil
	}

	game := &models.Game{
		Season:      season,
		Week:        week,
		HomeTeam:    homeTeam,
		AwayTeam:    awayTeam,
		IsCompleted: event.Status.Type.Completed,
	}

	if date, err := time.Parse(time.RFC3339, event.Date); err == nil {
		game.GameDate = date
	} else if date, err := time.Parse("2006-01-02T15:04Z", event.Date); err == nil {
		game.GameDate = date
	}

	// Scores only once the game has started
	if event.Status.Type.Completed || event.Status.Type.State == "in" {
		if homeScore, err := strconv.Atoi(homeComp.Score); err == nil {
			if awayScore, err := strconv.Atoi(awayComp.Score); err == nil {
				game.HomeScore = &homeScore
				game.AwayScore = &awayScore
				fillQuarters(game, homeComp.Linescores, awayComp.Linescores)
			}
		}
	}

	return game
}

// normalizeTeam maps ESPN abbreviations onto standard team codes
func normalizeTeam(abbrev string) string {
	if mapped, ok := espnTeamMap[abbrev]; ok {
		return mapped
	}
	return abbrev
}

// quarterSplit accumulates linescore periods; periods 5+ fold into OT
type quarterSplit struct {
	q1, q2, q3, q4, ot int
}

func splitLinescores(linescores []espnLinescore) quarterSplit {
	var q quarterSplit
	for _, ls := range linescores {
		value := int(ls.Value)
		switch {
		case ls.Period == 1:
			q.q1 = value
		case ls.Period == 2:
			q.q2 = value
		case ls.Period == 3:
			q.q3 = value
		case ls.Period == 4:
			q.q4 = value
		case ls.Period >= 5:
			q.ot += value
		}
	}
	return q
}

// fillQuarters populates quarter and half splits from linescores.
// Overtime points count toward the second half.
func fillQuarters(game *models.Game, home, away []espnLinescore) {
	h := splitLinescores(home)
	a := splitLinescores(away)

	game.HomeQ1, game.HomeQ2, game.HomeQ3, game.HomeQ4, game.HomeOT =
		&h.q1, &h.q2, &h.q3, &h.q4, &h.ot
	game.AwayQ1, game.AwayQ2, game.AwayQ3, game.AwayQ4, game.AwayOT =
		&a.q1, &a.q2, &a.q3, &a.q4, &a.ot

	home1H := h.q1 + h.q2
	home2H := h.q3 + h.q4 + h.ot
	away1H := a.q1 + a.q2
	away2H := a.q3 + a.q4 + a.ot
	game.Home1H, game.Home2H = &home1H, &home2H
	game.Away1H, game.Away2H = &away1H, &away2H
}
