package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catan/game"

	"github.com/google/uuid"
)

// GameRecord is the stored summary of one game.
type GameRecord struct {
	ID         string
	Seed       uint64
	Players    []string
	Winner     string
	WinnerSeat int
	TotalMoves int
	Turns      int
	CreatedAt  time.Time
}

// EventRecord is one stored action from a game's log.
type EventRecord struct {
	Seq    int
	Turn   int
	Seat   int
	Action string
	Detail string
}

// ErrGameNotFound is returned when a game ID is unknown.
var ErrGameNotFound = errors.New("game not found")

// SaveGame records a game's outcome and its full event log, returning the
// assigned game ID.
func (db *DB) SaveGame(gs *game.GameState, totalMoves int) (string, error) {
	names := make([]string, gs.PlayerCount())
	for i, p := range gs.Players {
		names[i] = p.Name
	}
	playersJSON, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("failed to encode players: %w", err)
	}

	id := uuid.New().String()

	tx, err := db.conn.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO games (id, seed, players_json, winner, winner_seat, total_moves, turns)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, int64(gs.Seed), string(playersJSON), gs.Winner(), gs.WinnerID, totalMoves, gs.TurnNumber)
	if err != nil {
		return "", fmt.Errorf("failed to insert game: %w", err)
	}

	for seq, ev := range gs.Events {
		_, err = tx.Exec(`
			INSERT INTO game_events (game_id, seq, turn, seat, action, detail)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, seq, ev.Turn, ev.Player, ev.Type.String(), ev.Detail)
		if err != nil {
			return "", fmt.Errorf("failed to insert event %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// GetGame loads one game record by ID.
func (db *DB) GetGame(id string) (GameRecord, error) {
	row := db.conn.QueryRow(`
		SELECT id, seed, players_json, winner, winner_seat, total_moves, turns, created_at
		FROM games WHERE id = ?`, id)
	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GameRecord{}, ErrGameNotFound
	}
	return rec, err
}

// ListGames returns all stored games, newest first.
func (db *DB) ListGames() ([]GameRecord, error) {
	rows, err := db.conn.Query(`
		SELECT id, seed, players_json, winner, winner_seat, total_moves, turns, created_at
		FROM games ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GameEvents loads a game's action log in order.
func (db *DB) GameEvents(id string) ([]EventRecord, error) {
	rows, err := db.conn.Query(`
		SELECT seq, turn, seat, action, detail
		FROM game_events WHERE game_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []EventRecord
	for rows.Next() {
		var ev EventRecord
		if err := rows.Scan(&ev.Seq, &ev.Turn, &ev.Seat, &ev.Action, &ev.Detail); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (GameRecord, error) {
	var rec GameRecord
	var seed int64
	var playersJSON string
	err := row.Scan(&rec.ID, &seed, &playersJSON, &rec.Winner, &rec.WinnerSeat,
		&rec.TotalMoves, &rec.Turns, &rec.CreatedAt)
	if err != nil {
		return GameRecord{}, err
	}
	rec.Seed = uint64(seed)
	if err := json.Unmarshal([]byte(playersJSON), &rec.Players); err != nil {
		return GameRecord{}, fmt.Errorf("failed to decode players: %w", err)
	}
	return rec, nil
}
