package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/gehirndienst/anniversary-go-bot/internal/anniversary"
)

const driverName = "postgres"

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
	)
}

// Open connects to postgres and checks the connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return db, nil
}

// PostgresBackend stores anniversaries in the anniversaries table, one row
// per record, ordered by position.
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(ctx context.Context, cfg Config) (*PostgresBackend, error) {
	db, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PostgresBackend{db: db}, nil
}

func (p *PostgresBackend) Close() error {
	return p.db.Close()
}

func (p *PostgresBackend) Load(ctx context.Context) ([]anniversary.Record, error) {
	rows, err := p.db.QueryContext(ctx, "SELECT date, title, kind FROM anniversaries ORDER BY position")
	if err != nil {
		return nil, errors.Wrap(err, "query anniversaries")
	}
	defer rows.Close()

	records := []anniversary.Record{}
	for rows.Next() {
		var r anniversary.Record
		if err := rows.Scan(&r.Date, &r.Title, &r.Kind); err != nil {
			return nil, errors.Wrap(err, "scan anniversary")
		}
		records = append(records, r)
	}
	return records, errors.Wrap(rows.Err(), "iterate anniversaries")
}

// Save replaces every row in one transaction.
func (p *PostgresBackend) Save(ctx context.Context, records []anniversary.Record) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM anniversaries"); err != nil {
		return errors.Wrap(err, "clear anniversaries")
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO anniversaries (position, date, title, kind) VALUES ($1, $2, $3, $4)")
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for i, r := range records {
		kind := r.Kind
		if kind == "" {
			kind = anniversary.KindOf(r.Title)
		}
		if _, err := stmt.ExecContext(ctx, i, r.Date, r.Title, string(kind)); err != nil {
			return errors.Wrapf(err, "insert anniversary %s", r.Date)
		}
	}

	return errors.Wrap(tx.Commit(), "commit anniversaries")
}
