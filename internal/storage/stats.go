package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// RunStats aggregates the run history of a game.
type RunStats struct {
	GameID          string
	Runs            int
	BestKills       int
	BestStage       int
	AvgKills        float64
	TotalKills      int64
	LongestSurvived float64 // simulation seconds
	LastPlayed      time.Time
}

// Stats aggregates every recorded run of gameID. An empty history yields
// zero values.
func (s *Store) Stats(gameID string) (*RunStats, error) {
	st := &RunStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(kills), 0),
		        COALESCE(MAX(stage), 0),
		        COALESCE(AVG(kills), 0),
		        COALESCE(SUM(kills), 0),
		        COALESCE(MAX(survived_secs), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&st.Runs, &st.BestKills, &st.BestStage, &st.AvgKills, &st.TotalKills, &st.LongestSurvived, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// BestKills returns the highest kill count of any run, 0 when there are none.
func (s *Store) BestKills(gameID string) (int, error) {
	var kills sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(kills) FROM runs WHERE game_id = ?", gameID).Scan(&kills)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best kills: %w", err)
	}
	return int(kills.Int64), nil
}

// ClearRuns deletes the run history of gameID and reports how many runs
// were removed.
func (s *Store) ClearRuns(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}
