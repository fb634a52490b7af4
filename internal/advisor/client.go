package advisor

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

var tracer = otel.Tracer("fintrack/advisor")

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-3-flash-preview"

// forecastWindow is how many recent transactions a forecast looks at.
const forecastWindow = 50

// Client calls the generateContent endpoint of a Gemini-compatible API.
//
// Identical concurrent requests share one HTTP call. Calls are not retried;
// the circuit breaker fails fast while the model is down.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	cb         *gobreaker.CircuitBreaker
	group      singleflight.Group
}

// NewClient creates an advisor client. baseURL has no trailing /v1beta.
func NewClient(httpClient *http.Client, baseURL, apiKey, model string, cb *gobreaker.CircuitBreaker) *Client {
	if model == "" {
		model = DefaultModel
	}
	if cb == nil {
		cb = NewCircuitBreaker("advisor")
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		cb:         cb,
	}
}

// NewCircuitBreaker opens after 5 requests with a 60% failure ratio and
// tries again after 10 seconds.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
}

// ScanReceipt reads a receipt photo. image is base64, optionally as a data URL.
func (c *Client) ScanReceipt(ctx context.Context, image string) (*ReceiptScan, error) {
	mimeType, data := splitDataURL(image)
	if data == "" {
		return nil, models.Invalid("image", "must not be empty")
	}
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: mimeType, Data: data}},
			{Text: receiptPrompt},
		}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}
	var out ReceiptScan
	if err := c.generateJSON(ctx, "scan_receipt", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseSMS extracts a transaction from a bank or mobile-wallet SMS.
func (c *Client) ParseSMS(ctx context.Context, text string) (*SMSParse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.Invalid("text", "must not be empty")
	}
	var out SMSParse
	if err := c.generateJSON(ctx, "parse_sms", jsonRequest(fmt.Sprintf(smsPrompt, text)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseVoice extracts a transaction from a transcribed Bengali command.
func (c *Client) ParseVoice(ctx context.Context, text string) (*VoiceCommand, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.Invalid("text", "must not be empty")
	}
	var out VoiceCommand
	if err := c.generateJSON(ctx, "parse_voice", jsonRequest(fmt.Sprintf(voicePrompt, text)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast predicts next month's spending from the most recent transactions.
func (c *Client) Forecast(ctx context.Context, txs []models.Transaction) (*Forecast, error) {
	type sample struct {
		Amount   float64                `json:"amount"`
		Category string                 `json:"category"`
		Date     string                 `json:"date"`
		Type     models.TransactionType `json:"type"`
	}
	recent := make([]models.Transaction, len(txs))
	copy(recent, txs)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > forecastWindow {
		recent = recent[:forecastWindow]
	}
	samples := make([]sample, len(recent))
	for i, t := range recent {
		samples[i] = sample{Amount: t.Amount, Category: t.Category, Date: t.Date, Type: t.Type}
	}
	data, err := json.Marshal(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transactions: %w", err)
	}

	var out Forecast
	if err := c.generateJSON(ctx, "forecast", jsonRequest(fmt.Sprintf(forecastPrompt, data)), &out); err != nil {
		return nil, err
	}
	if out.CategoryBreakdown == nil {
		out.CategoryBreakdown = []CategoryForecast{}
	}
	return &out, nil
}

// Ask answers a free-form financial question in Bengali.
// The error is non-nil only alongside FallbackAnswer.
func (c *Client) Ask(ctx context.Context, query string, history []Turn) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", models.Invalid("query", "must not be empty")
	}
	if history == nil {
		history = []Turn{}
	}
	hist, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("failed to encode history: %w", err)
	}
	temperature, topP := 0.7, 0.95
	req := generateRequest{
		Contents:         []content{{Parts: []part{{Text: fmt.Sprintf(askPrompt, query, hist)}}}},
		GenerationConfig: &generationConfig{Temperature: &temperature, TopP: &topP},
	}
	text, err := c.generate(ctx, "ask", req)
	if err != nil {
		return FallbackAnswer, err
	}
	return strings.TrimSpace(text), nil
}

// generateJSON calls the model and decodes its text answer into out.
func (c *Client) generateJSON(ctx context.Context, op string, req generateRequest, out any) error {
	text, err := c.generate(ctx, op, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(stripFence(text)), out); err != nil {
		return &ExternalServiceError{Op: op, Err: fmt.Errorf("decode model answer: %w", err)}
	}
	return nil
}

// generate returns the text of the first candidate.
// Waiters of a shared call stop waiting when their own context ends; the
// shared call itself keeps running for the others.
func (c *Client) generate(ctx context.Context, op string, req generateRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "advisor."+op)
	defer span.End()
	span.SetAttributes(attribute.String("advisor.model", c.model))

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}
	sum := sha256.Sum256(body)
	key := op + ":" + hex.EncodeToString(sum[:])

	callCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return c.cb.Execute(func() (any, error) {
			return c.post(callCtx, body)
		})
	})

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		span.SetStatus(codes.Error, "canceled")
		return "", &ExternalServiceError{Op: op, Err: ctx.Err()}
	case res := <-ch:
		span.SetAttributes(attribute.Bool("advisor.shared", res.Shared))
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
			return "", &ExternalServiceError{Op: op, Err: res.Err}
		}
		return res.Val.(string), nil
	}
}

func (c *Client) post(ctx context.Context, body []byte) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http call to model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("model returned an empty answer")
	}
	return sb.String(), nil
}

func jsonRequest(prompt string) generateRequest {
	return generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}
}

// splitDataURL separates "data:image/png;base64,AAAA" into its mime type and
// payload. A bare payload is assumed to be JPEG.
func splitDataURL(image string) (mimeType, data string) {
	image = strings.TrimSpace(image)
	mimeType = "image/jpeg"
	if !strings.HasPrefix(image, "data:") {
		return mimeType, image
	}
	header, payload, ok := strings.Cut(image, ",")
	if !ok {
		return mimeType, ""
	}
	header = strings.TrimPrefix(header, "data:")
	if mt, _, _ := strings.Cut(header, ";"); mt != "" {
		mimeType = mt
	}
	return mimeType, payload
}

// stripFence removes a ```json fence some models wrap around JSON answers.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
