package mutalyzer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// defaultBaseURL is the public Mutalyzer API.
const defaultBaseURL = "https://mutalyzer.nl/api"

// Client fetches transcript annotations from the Mutalyzer API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client against the public Mutalyzer API.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.NewNop(),
	}
}

// SetBaseURL points the client at a different API endpoint.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetLogger sets the logger for request debugging.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// normalizeResponse mirrors the slice of the normalize payload we consume:
// the genomic exon and CDS coordinate pairs of the selected transcript.
type normalizeResponse struct {
	SelectorShort struct {
		Exon struct {
			G [][]string `json:"g"`
		} `json:"exon"`
		CDS struct {
			G [][]string `json:"g"`
		} `json:"cds"`
	} `json:"selector_short"`
}

// viewVariantsResponse mirrors the view_variants payload.
type viewVariantsResponse struct {
	Views     []View `json:"views"`
	SeqLength int    `json:"seq_length"`
}

// FetchExons returns the raw exon and coding-region coordinate pairs for a
// transcript description. The pairs are 1-based decimal strings in
// transcript order, descending on the reverse strand (see IsReverse).
func (c *Client) FetchExons(description string) (exonPairs, cdsPairs [][]string, err error) {
	var resp normalizeResponse
	if err := c.getJSON("normalize/"+url.PathEscape(description), &resp); err != nil {
		return nil, nil, fmt.Errorf("fetch exons for %s: %w", description, err)
	}
	if len(resp.SelectorShort.Exon.G) == 0 {
		return nil, nil, fmt.Errorf("no exons in annotation for %s", description)
	}
	return resp.SelectorShort.Exon.G, resp.SelectorShort.CDS.G, nil
}

// FetchVariants returns the view_variants payload for a description. The
// payload mixes actual variants with the unchanged stretches between them;
// filtering is left to ParseViewVariants.
func (c *Client) FetchVariants(description string) ([]View, error) {
	var resp viewVariantsResponse
	if err := c.getJSON("view_variants/"+url.PathEscape(description), &resp); err != nil {
		return nil, fmt.Errorf("fetch variants for %s: %w", description, err)
	}
	return resp.Views, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(path string, out any) error {
	requestURL := fmt.Sprintf("%s/%s", c.baseURL, path)
	c.logger.Debug("mutalyzer request", zap.String("url", requestURL))

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return fmt.Errorf("mutalyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mutalyzer error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode mutalyzer response: %w", err)
	}
	return nil
}
