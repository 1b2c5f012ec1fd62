package sensors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/agricure/api/internal/models"
)

// ErrNoFeedData is returned when the channel has no entry yet or a field is
// missing from the latest entry.
var ErrNoFeedData = errors.New("sensor feed has no data")

// maxFeedBodyBytes caps how much of a feed response is read.
const maxFeedBodyBytes = 1 << 20

// ThingSpeakClient reads the last entry of a ThingSpeak channel. Channel
// fields map as field1..field7 = nitrogen, phosphorus, potassium, soil pH,
// soil moisture, temperature, humidity.
type ThingSpeakClient struct {
	httpClient *http.Client
	baseURL    string
	channelID  string
	apiKey     string
}

// NewThingSpeakClient creates a client for one channel. Requests are bounded
// by timeout.
func NewThingSpeakClient(baseURL, channelID, apiKey string, timeout time.Duration) *ThingSpeakClient {
	return &ThingSpeakClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		channelID:  channelID,
		apiKey:     apiKey,
	}
}

type feedEntry struct {
	CreatedAt time.Time `json:"created_at"`
	EntryID   int64     `json:"entry_id"`
	Field1    *string   `json:"field1"`
	Field2    *string   `json:"field2"`
	Field3    *string   `json:"field3"`
	Field4    *string   `json:"field4"`
	Field5    *string   `json:"field5"`
	Field6    *string   `json:"field6"`
	Field7    *string   `json:"field7"`
}

// Latest implements Fetcher.
func (c *ThingSpeakClient) Latest(ctx context.Context) (models.SensorReading, error) {
	endpoint := fmt.Sprintf("%s/channels/%s/feeds/last.json", c.baseURL, url.PathEscape(c.channelID))
	if c.apiKey != "" {
		endpoint += "?" + url.Values{"api_key": {c.apiKey}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("failed to fetch channel %s: %w", c.channelID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.SensorReading{}, fmt.Errorf("channel %s returned status %d", c.channelID, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("failed to read channel %s: %w", c.channelID, err)
	}

	// ThingSpeak answers "-1" for an empty channel.
	if strings.TrimSpace(string(body)) == "-1" {
		return models.SensorReading{}, ErrNoFeedData
	}

	var entry feedEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return models.SensorReading{}, fmt.Errorf("failed to decode channel %s: %w", c.channelID, err)
	}

	return entry.reading()
}

type channelField struct {
	name  string
	raw   *string
	value *float64
}

func (e feedEntry) reading() (models.SensorReading, error) {
	r := models.SensorReading{
		Timestamp: e.CreatedAt,
		Source:    models.SourceThingSpeak,
		Connected: true,
	}

	fields := []channelField{
		{name: "field1", raw: e.Field1, value: &r.Nitrogen},
		{name: "field2", raw: e.Field2, value: &r.Phosphorus},
		{name: "field3", raw: e.Field3, value: &r.Potassium},
		{name: "field4", raw: e.Field4, value: &r.SoilPH},
		{name: "field5", raw: e.Field5, value: &r.SoilMoisture},
		{name: "field6", raw: e.Field6, value: &r.Temperature},
		{name: "field7", raw: e.Field7, value: &r.Humidity},
	}
	for _, f := range fields {
		if f.raw == nil || strings.TrimSpace(*f.raw) == "" {
			return models.SensorReading{}, fmt.Errorf("%w: %s missing from entry %d", ErrNoFeedData, f.name, e.EntryID)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(*f.raw), 64)
		if err != nil {
			return models.SensorReading{}, fmt.Errorf("invalid %s %q in entry %d: %w", f.name, *f.raw, e.EntryID, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.SensorReading{}, fmt.Errorf("invalid %s %q in entry %d: not finite", f.name, *f.raw, e.EntryID)
		}
		*f.value = v
	}

	return r, nil
}
