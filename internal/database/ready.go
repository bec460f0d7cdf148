// Package database checks that the Postgres container accepts
// connections once compose has started it.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"
	"github.com/thenoetrevino/pgsetup/internal/envfile"
)

const (
	defaultHost        = "localhost"
	defaultAttempts    = 15
	defaultInterval    = 2 * time.Second
	defaultPingTimeout = 3 * time.Second
)

// ErrNotReady indicates every connection attempt failed
var ErrNotReady = errors.New("postgres is not accepting connections")

// Conn is the part of a connection the probe needs
type Conn interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Connector opens a connection for a DSN
type Connector func(ctx context.Context, dsn string) (Conn, error)

// PgxConnector connects with pgx
func PgxConnector(ctx context.Context, dsn string) (Conn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Probe waits for Postgres to become reachable
type Probe struct {
	Host        string
	Attempts    uint64
	Interval    time.Duration
	PingTimeout time.Duration
	Connect     Connector
	Logger      *slog.Logger
}

// NewProbe returns a Probe with the defaults filled in
func NewProbe() *Probe {
	return &Probe{
		Host:        defaultHost,
		Attempts:    defaultAttempts,
		Interval:    defaultInterval,
		PingTimeout: defaultPingTimeout,
		Connect:     PgxConnector,
		Logger:      slog.Default(),
	}
}

// DSN builds the connection URL for the published container port
func DSN(host string, v envfile.Values) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(v.PostgresUser, v.PostgresPassword),
		Host:     net.JoinHostPort(host, v.PostgresPort),
		Path:     "/" + v.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Wait retries a connect and ping until one succeeds or the attempts
// run out. It returns the number of attempts made.
func (p *Probe) Wait(ctx context.Context, v envfile.Values) (int, error) {
	host := p.Host
	if host == "" {
		host = defaultHost
	}
	dsn := DSN(host, v)

	backoff := retry.WithMaxRetries(p.retries(), retry.NewConstant(p.interval()))

	attempts := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		if err := p.ping(ctx, dsn); err != nil {
			p.logger().Debug("postgres not ready", "attempt", attempts, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return attempts, fmt.Errorf("%w on %s after %d attempts: %w", ErrNotReady, net.JoinHostPort(host, v.PostgresPort), attempts, err)
	}

	p.logger().Info("postgres ready", "attempts", attempts)
	return attempts, nil
}

func (p *Probe) ping(ctx context.Context, dsn string) error {
	timeout := p.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	connect := p.Connect
	if connect == nil {
		connect = PgxConnector
	}

	conn, err := connect(pctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if cerr := conn.Close(ctx); cerr != nil {
			p.logger().Debug("error closing probe connection", "error", cerr)
		}
	}()

	if err := conn.Ping(pctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// retries converts the attempt budget into go-retry's retry count
func (p *Probe) retries() uint64 {
	if p.Attempts <= 1 {
		return 0
	}
	return p.Attempts - 1
}

func (p *Probe) interval() time.Duration {
	if p.Interval <= 0 {
		return defaultInterval
	}
	return p.Interval
}

func (p *Probe) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
