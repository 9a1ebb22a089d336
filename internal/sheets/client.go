// Package sheets queries the Google Sheets document that stores schedules.
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	coreconfig "github.com/Nik4Low/KGTUbot/core/config"
	"github.com/Nik4Low/KGTUbot/core/logger"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const defaultQuotaPerMinute = 50

// RangeQuerier retrieves a rectangular range of a named sheet as string cells.
type RangeQuerier interface {
	QueryRange(ctx context.Context, sheetName, rangeSpec string) ([][]string, error)
}

// Client wraps the Sheets API with a read-quota limiter.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	limiter       *rate.Limiter
}

// NewClient builds a read-only Sheets client from configuration.
func NewClient(ctx context.Context, cfg coreconfig.SheetsConfig) (*Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	}
	if strings.TrimSpace(cfg.CredentialsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: service init: %w", err)
	}

	quota := cfg.QuotaPerMinute
	if quota <= 0 {
		quota = defaultQuotaPerMinute
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		limiter:       rate.NewLimiter(rate.Every(time.Minute/time.Duration(quota)), quota),
	}, nil
}

// QueryRange fetches sheetName!rangeSpec and converts cells to strings.
// Blocks on the quota limiter before issuing the read.
func (c *Client) QueryRange(ctx context.Context, sheetName, rangeSpec string) ([][]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("sheets: quota wait: %w", err)
	}

	fullRange := sheetName + "!" + rangeSpec
	start := time.Now()
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, fullRange).Context(ctx).Do()
	if err != nil {
		logger.Error(ctx, "sheets", "sheets.query",
			slog.String("status", "fail"),
			slog.String("sheet", sheetName),
			slog.String("range", rangeSpec),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			slog.Duration("duration", logger.Took(start)),
		)
		return nil, fmt.Errorf("sheets: values.get %s: %w", fullRange, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		rows[i] = cells
	}

	logger.Debug(ctx, "sheets", "sheets.query",
		slog.String("status", "ok"),
		slog.String("sheet", sheetName),
		slog.String("range", rangeSpec),
		slog.Int("rows", len(rows)),
		slog.Duration("duration", logger.Took(start)),
	)
	return rows, nil
}
