package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"house-price/internal/features"
)

// HTTPPredictor implementa Predictor contra un servidor de modelos remoto.
type HTTPPredictor struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPPredictor construye un cliente apuntando a {baseURL}/predict.
func NewHTTPPredictor(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPPredictor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPPredictor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPPredictor) Predict(ctx context.Context, rows []features.Row) ([]float64, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}

	reqBody := predictRequest{
		Columns: rows[0].Names(),
		Data:    make([][]features.Value, len(rows)),
	}
	for i, row := range rows {
		if !sameColumns(rows[0], row) {
			return nil, fmt.Errorf("%w: row %d", ErrMixedSchemas, i)
		}
		reqBody.Data[i] = row.Values()
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var pr predictResponse
	decodeErr := json.Unmarshal(respBody, &pr)

	if resp.StatusCode >= 400 {
		c.logger.Warn("predictor error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		if decodeErr == nil && pr.Error != "" {
			return nil, fmt.Errorf("predictor http error: status=%d: %s", resp.StatusCode, pr.Error)
		}
		return nil, fmt.Errorf("predictor http error: status=%d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("unmarshal response: %w", decodeErr)
	}
	if pr.Error != "" {
		return nil, errors.New("predictor error: " + pr.Error)
	}
	if len(pr.Predictions) != len(rows) {
		return nil, fmt.Errorf("predictor returned %d predictions for %d rows", len(pr.Predictions), len(rows))
	}

	return pr.Predictions, nil
}

// sameColumns compara nombres y orden; el lote viaja con una sola lista de columnas.
func sameColumns(a, b features.Row) bool {
	if a.Schema() == b.Schema() {
		return true
	}
	an, bn := a.Names(), b.Names()
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}

type predictRequest struct {
	Columns []string           `json:"columns"`
	Data    [][]features.Value `json:"data"`
}

type predictResponse struct {
	Predictions []float64 `json:"predictions"`
	Error       string    `json:"error,omitempty"`
}
