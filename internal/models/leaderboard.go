package models

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// LeaderboardPlayer is one registered player's all-time rubber record.
type LeaderboardPlayer struct {
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	GamesPlayed int64   `json:"games_played"`
	GamesWon    int64   `json:"games_won"`
	WinRate     float64 `json:"win_rate"` // [0..1]
}

type LeaderboardResponse struct {
	Items []LeaderboardPlayer `json:"items"`
}

// BuildLeaderboard lists registered players ordered by win rate, then games
// won. Guests and bots never appear: only linked accounts are tallied.
func BuildLeaderboard(ctx context.Context, db *sql.DB) (*LeaderboardResponse, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, username, games_played, games_won FROM users WHERE games_played > 0`,
	)
	if err != nil {
		return nil, fmt.Errorf("BuildLeaderboard: querying users: %w", err)
	}
	defer rows.Close()

	items := make([]LeaderboardPlayer, 0)
	for rows.Next() {
		var p LeaderboardPlayer
		if err := rows.Scan(&p.UserID, &p.Username, &p.GamesPlayed, &p.GamesWon); err != nil {
			return nil, fmt.Errorf("BuildLeaderboard: scanning user row: %w", err)
		}
		if p.GamesPlayed > 0 {
			p.WinRate = float64(p.GamesWon) / float64(p.GamesPlayed)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("BuildLeaderboard: iterating user rows: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].WinRate != items[j].WinRate {
			return items[i].WinRate > items[j].WinRate
		}
		if items[i].GamesWon != items[j].GamesWon {
			return items[i].GamesWon > items[j].GamesWon
		}
		return items[i].Username < items[j].Username
	})

	return &LeaderboardResponse{Items: items}, nil
}
