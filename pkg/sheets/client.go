package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw     = "RAW"
	insertDataNewRows = "INSERT_ROWS"
)

// ErrMalformedAppend is returned when the API accepts an append but does not acknowledge the written row.
var ErrMalformedAppend = errors.New("sheets: append response did not acknowledge the row")

// Client wraps the Google Sheets values API for a single spreadsheet.
type Client struct {
	service       *gsheets.Service
	spreadsheetID string
}

// NewClientFromCredentialsFile creates a Sheets client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, spreadsheetID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, spreadsheetID)
}

// NewClientFromCredentialsJSON creates a Sheets client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID}, nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, spreadsheetID string) (*Client, error) {
	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID}, nil
}

// AppendRow appends one row after the last row of rng. Values are stored as given (RAW).
func (c *Client) AppendRow(ctx context.Context, rng string, row []interface{}) (*AppendResult, error) {
	body := &gsheets.ValueRange{Values: [][]interface{}{row}}

	resp, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, rng, body).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataNewRows).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to append row: %w", err)
	}
	if resp.Updates == nil || resp.Updates.UpdatedRows != 1 {
		return nil, ErrMalformedAppend
	}

	return &AppendResult{
		UpdatedRange: resp.Updates.UpdatedRange,
		UpdatedRows:  resp.Updates.UpdatedRows,
	}, nil
}

// ReadRows returns the rows of rng as strings. Short rows are padded to the widest row.
func (c *Client) ReadRows(ctx context.Context, rng string) ([]Row, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	width := 0
	for _, values := range resp.Values {
		if len(values) > width {
			width = len(values)
		}
	}

	rows := make([]Row, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make(Row, width)
		for i, v := range values {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
