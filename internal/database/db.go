package database

import (
	"context"
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/config"
)

// dsn builds the MySQL DSN through the driver's own config type instead of
// string formatting, so credentials with special characters survive intact.
// parseTime is on and times are read in UTC.
func dsn(cfg config.Config) string {
	dc := mysql.NewConfig()
	dc.User = cfg.DBUser
	dc.Passwd = cfg.DBPass
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	dc.DBName = cfg.DBName
	dc.ParseTime = true
	dc.Loc = time.UTC
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc.FormatDSN()
}

// Open dials MySQL, sizes the connection pool from configuration
// (DB_MAX_CONNS, DB_CONN_MAX_AGE_MIN) and verifies the server is reachable
// before returning.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, err
	}

	maxConns := cfg.DBMaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	if cfg.DBConnMaxAgeMin > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxAgeMin) * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
