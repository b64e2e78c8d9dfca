package models

import (
	"database/sql"
	"fmt"
	"time"
)

// MatchResult is one finished rubber. Only outcomes are persisted; the live
// match never touches the database.
type MatchResult struct {
	ID         int64         `json:"id"`
	WinnerTeam string        `json:"winner_team"`
	VitScore   int           `json:"vit_score"`
	TitScore   int           `json:"tit_score"`
	DoubleWin  bool          `json:"double_win"`
	Rounds     int           `json:"rounds"`
	FinishedAt time.Time     `json:"finished_at"`
	Players    []MatchPlayer `json:"players,omitempty"`
}

type MatchPlayer struct {
	Seat   int    `json:"seat"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id,omitempty"`
	Team   string `json:"team"`
	Won    bool   `json:"won"`
}

// InsertMatchResult records a finished rubber and bumps the per-user tallies
// for any seats linked to accounts.
func InsertMatchResult(db *sql.DB, r MatchResult) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO match_results(winner_team, vit_score, tit_score, double_win, rounds) VALUES (?, ?, ?, ?, ?)`,
		r.WinnerTeam, r.VitScore, r.TitScore, r.DoubleWin, r.Rounds,
	)
	if err != nil {
		return 0, fmt.Errorf("insert match result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range r.Players {
		var userID any
		if p.UserID != 0 {
			userID = p.UserID
		}
		if _, err := tx.Exec(
			`INSERT INTO match_players(match_id, seat, name, user_id, team, won) VALUES (?, ?, ?, ?, ?, ?)`,
			id, p.Seat, p.Name, userID, p.Team, p.Won,
		); err != nil {
			return 0, fmt.Errorf("insert match player: %w", err)
		}
		if p.UserID != 0 {
			won := 0
			if p.Won {
				won = 1
			}
			if _, err := tx.Exec(
				`UPDATE users SET games_played = games_played + 1, games_won = games_won + ? WHERE id = ?`,
				won, p.UserID,
			); err != nil {
				return 0, fmt.Errorf("update user tally: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// ListRecentMatches returns the latest finished rubbers, newest first.
func ListRecentMatches(db *sql.DB, limit int) ([]MatchResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT id, winner_team, vit_score, tit_score, double_win, rounds, finished_at
		 FROM match_results ORDER BY finished_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var out []MatchResult
	for rows.Next() {
		var m MatchResult
		if err := rows.Scan(&m.ID, &m.WinnerTeam, &m.VitScore, &m.TitScore, &m.DoubleWin, &m.Rounds, &m.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
