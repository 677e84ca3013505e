package sheets

import (
	"context"
	"net/http"
	"time"

	"github.com/spigell/intern-swipe/internal/utils"

	"go.uber.org/zap"
)

const (
	userAgent      = "spigell/intern-swipe (spigelly@gmail.com)"
	defaultTimeout = 10 * time.Second
	// previewLength is the maximum length of row previews in debug logs.
	previewLength = 120
)

// Row is an ordered sequence of raw string cells taken directly from the source.
type Row []string

// Options control how fetched content is split into rows.
type Options struct {
	// Delimiter separates cells in delimited text. Defaults to a comma.
	Delimiter rune
	// SkipEmptyLines drops rows without content (no cells or a single empty cell).
	SkipEmptyLines bool
	// LazyQuotes relaxes quote handling in delimited text.
	LazyQuotes bool
	// Sheet selects a worksheet in xlsx workbooks. The first sheet is used when empty.
	Sheet string
}

// DefaultOptions mirror a published spreadsheet CSV export.
func DefaultOptions() Options {
	return Options{
		Delimiter:      ',',
		SkipEmptyLines: true,
	}
}

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	// Token is sent as a bearer token when set.
	Token   string
	Options Options
}

func New(ctx context.Context, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		ctx:    ctx,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
		Options:   DefaultOptions(),
	}
}

// Fetch retrieves the source once and parses it into rows.
// Failures are returned as *TransportError or *ParseError. No retry is attempted.
func (c *Client) Fetch(source string) ([]Row, error) {
	content, err := c.retrieve(source)
	if err != nil {
		return nil, err
	}

	var rows []Row
	switch content.format {
	case formatXLSX:
		rows, err = ParseXLSX(content.body, c.Options)
	default:
		rows, err = ParseCSV(content.body, c.Options)
	}
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	fields := []zap.Field{
		zap.String("source", source),
		zap.String("format", string(content.format)),
		zap.Int("rows", len(rows)),
	}
	if len(rows) > 0 {
		fields = append(fields, zap.String("first_row_preview", utils.JoinForLog(rows[0], previewLength)))
	}
	c.logger.Debug("parsed tabular source", fields...)

	return rows, nil
}
