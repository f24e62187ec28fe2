package tournament

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord describes one completed game.
type GameRecord struct {
	ID        string // uuid
	Strategy1 string
	Strategy2 string
	Opening   string
	Winner    string // "player1", "player2" or "" for a draw
	Moves     int
	Duration  time.Duration
}

// MatchResult aggregates one strategy pairing under a fixed opening.
type MatchResult struct {
	Strategy1 string
	Strategy2 string
	Opening   string
	Games     int
	Wins1     int
	Wins2     int
	Draws     int
}

// Writer persists tournament output as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory this writer creates files in.
func (w *Writer) BaseDir() string { return w.baseDir }

// WriteMatchResults writes the per-pairing summary, one row per strategy per
// match so win rates read directly.
func (w *Writer) WriteMatchResults(results []MatchResult) error {
	path := filepath.Join(w.baseDir, "match_results.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match results file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"Opening", "Strategy", "Opponent", "Wins", "Win %"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write match results header: %w", err)
	}

	for _, r := range results {
		rows := [][]string{
			{r.Opening, r.Strategy1, r.Strategy2, strconv.Itoa(r.Wins1), winRate(r.Wins1, r.Games)},
			{r.Opening, r.Strategy2, r.Strategy1, strconv.Itoa(r.Wins2), winRate(r.Wins2, r.Games)},
		}
		for _, row := range rows {
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write match result row: %w", err)
			}
		}
	}
	return nil
}

func winRate(wins, games int) string {
	if games == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(wins)/float64(games)*100)
}

// WriteGameRecords writes one row per game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "strategy1", "strategy2", "opening", "winner", "moves", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Strategy1,
			r.Strategy2,
			r.Opening,
			r.Winner,
			strconv.Itoa(r.Moves),
			r.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}
