package store

type migration struct {
	id   int
	name string
	sql  string
}

var migrations = []migration{
	{
		id:   1,
		name: "initial_schema",
		sql: `
			-- Games table: one row per finished (or capped) game
			CREATE TABLE games (
				id TEXT PRIMARY KEY,
				seed INTEGER NOT NULL,
				players_json TEXT NOT NULL,
				winner TEXT NOT NULL DEFAULT '',
				winner_seat INTEGER NOT NULL DEFAULT -1,
				total_moves INTEGER NOT NULL,
				turns INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_games_winner ON games(winner);

			-- Game events: the append-only action log, one row per action
			CREATE TABLE game_events (
				game_id TEXT NOT NULL,
				seq INTEGER NOT NULL,
				turn INTEGER NOT NULL,
				seat INTEGER NOT NULL,
				action TEXT NOT NULL,
				detail TEXT NOT NULL DEFAULT '',
				PRIMARY KEY (game_id, seq),
				FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_game_events_game ON game_events(game_id);
		`,
	},
}
