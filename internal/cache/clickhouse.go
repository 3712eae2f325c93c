package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// QuoteRecord is one served quote, kept for monitoring and fee analysis.
type QuoteRecord struct {
	Timestamp   time.Time
	BaseMint    string
	Side        string // "buy", "sell", "deposit", "withdraw"
	AmountIn    string
	AmountOut   string
	Fee         string
	SlippagePct float64
	TookMs      int64
}

// QuoteLog writes served quotes to ClickHouse.
type QuoteLog struct {
	conn driver.Conn
}

func NewQuoteLog(addr, database, username, password string) (*QuoteLog, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to clickhouse: %w", err)
	}
	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}
	return &QuoteLog{conn: conn}, nil
}

func (q *QuoteLog) InsertQuote(ctx context.Context, rec *QuoteRecord) error {
	query := `
		INSERT INTO quotes (
			timestamp, base_mint, side, amount_in, amount_out,
			fee, slippage_pct, took_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := q.conn.Exec(ctx, query,
		rec.Timestamp,
		rec.BaseMint,
		rec.Side,
		rec.AmountIn,
		rec.AmountOut,
		rec.Fee,
		rec.SlippagePct,
		rec.TookMs,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (q *QuoteLog) Close() error {
	return q.conn.Close()
}
