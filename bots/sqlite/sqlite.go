// Package sqlite provides a SQLite-backed bot registry for single-binary
// deployments where bot definitions should survive restarts.
package sqlite

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/jrsteele09/steam-login-gateway/bots"
	gatewayerrors "github.com/jrsteele09/steam-login-gateway/internal/errors"
)

type Registry struct {
	db *sql.DB
}

var _ bots.Registry = (*Registry)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS bots (
	name TEXT PRIMARY KEY,
	steam_id INTEGER NOT NULL DEFAULT 0,
	session_id TEXT NOT NULL DEFAULT '',
	access_token TEXT NOT NULL DEFAULT '',
	enabled INTEGER NOT NULL DEFAULT 1
);
`

// Open opens (creating if necessary) the registry database at path.
func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "[sqlite.Open] sql.Open")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "[sqlite.Open] enabling foreign keys")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "[sqlite.Open] applying schema")
	}
	return &Registry{db: db}, nil
}

func (r *Registry) Close() error {
	return r.db.Close()
}

func (r *Registry) GetBot(name string) (*bots.Bot, error) {
	if name == "" {
		return nil, gatewayerrors.ErrBotNameEmpty
	}

	row := r.db.QueryRow(
		`SELECT name, steam_id, session_id, access_token, enabled FROM bots WHERE name = ?`, name)

	var bot bots.Bot
	var enabled int
	err := row.Scan(&bot.Name, &bot.SteamID, &bot.SessionID, &bot.AccessToken, &enabled)
	if err == sql.ErrNoRows {
		return nil, gatewayerrors.ErrBotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "[Registry.GetBot] row.Scan")
	}
	bot.Enabled = enabled != 0
	return &bot, nil
}

func (r *Registry) List() ([]*bots.Bot, error) {
	rows, err := r.db.Query(
		`SELECT name, steam_id, session_id, access_token, enabled FROM bots ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "[Registry.List] db.Query")
	}
	defer rows.Close()

	var all []*bots.Bot
	for rows.Next() {
		var bot bots.Bot
		var enabled int
		if err := rows.Scan(&bot.Name, &bot.SteamID, &bot.SessionID, &bot.AccessToken, &enabled); err != nil {
			return nil, errors.Wrap(err, "[Registry.List] rows.Scan")
		}
		bot.Enabled = enabled != 0
		all = append(all, &bot)
	}
	return all, rows.Err()
}

func (r *Registry) Upsert(bot *bots.Bot) error {
	if bot == nil || bot.Name == "" {
		return gatewayerrors.ErrBotNameEmpty
	}

	enabled := 0
	if bot.Enabled {
		enabled = 1
	}
	_, err := r.db.Exec(`
INSERT INTO bots (name, steam_id, session_id, access_token, enabled)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	steam_id = excluded.steam_id,
	session_id = excluded.session_id,
	access_token = excluded.access_token,
	enabled = excluded.enabled`,
		bot.Name, bot.SteamID, bot.SessionID, bot.AccessToken, enabled)
	return errors.Wrap(err, "[Registry.Upsert] db.Exec")
}

func (r *Registry) Delete(name string) error {
	if name == "" {
		return gatewayerrors.ErrBotNameEmpty
	}
	_, err := r.db.Exec(`DELETE FROM bots WHERE name = ?`, name)
	return errors.Wrap(err, "[Registry.Delete] db.Exec")
}
