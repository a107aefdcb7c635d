package daily

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

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
)

// modelPriority is the fixed list of known-good fallback models, most
// preferred first.
var modelPriority = []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-pro", "gemini-1.0-pro"}

var errNoAPIKey = errors.New("gemini api key missing")

// GeminiClient talks to the generative-language REST API. Requests are rate
// limited; the caller's context bounds each call.
type GeminiClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

func NewGeminiClient(apiKey, baseURL string) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GeminiClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 60 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// ModelInfo is one entry of the model-listing endpoint.
type ModelInfo struct {
	Name                       string   `json:"name"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if c.apiKey == "" {
		return nil, errNoAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models?key="+c.apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read models response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("list models: %s", upstreamMessage(resp.StatusCode, body))
	}

	var out struct {
		Models []ModelInfo `json:"models"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode models response: %w", err)
	}
	return out.Models, nil
}

// GenerateContent submits the prompt to one model and returns the raw text
// of the first candidate.
func (c *GeminiClient) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errNoAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature":     0.9,
			"topK":            40,
			"topP":            0.95,
			"maxOutputTokens": 2048,
		},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("generate content (%s): %s", model, upstreamMessage(resp.StatusCode, body))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate content (%s): empty candidate", model)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func upstreamMessage(status int, body []byte) string {
	var e apiError
	if json.Unmarshal(body, &e) == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}

// GeminiGenerator implements Generator as an explicit two-step strategy:
// attempt the primary model, on failure discover a working model from the
// listing endpoint and attempt once more. The final fallback lives in the
// Service, not here.
type GeminiGenerator struct {
	client *GeminiClient
	model  string

	now func() time.Time
}

func NewGeminiGenerator(client *GeminiClient, primaryModel string) *GeminiGenerator {
	if primaryModel == "" {
		primaryModel = defaultModel
	}
	return &GeminiGenerator{
		client: client,
		model:  primaryModel,
		now:    func() time.Time { return time.Now().In(Location()) },
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context) (*Content, error) {
	prompt := buildPrompt(g.now())

	text, err := g.client.GenerateContent(ctx, g.model, prompt)
	if err != nil {
		if errors.Is(err, errNoAPIKey) {
			return nil, err
		}
		model := g.discoverModel(ctx)
		text, err = g.client.GenerateContent(ctx, model, prompt)
		if err != nil {
			return nil, err
		}
	}
	return parseContent(text)
}

// discoverModel picks the first priority model the listing endpoint reports
// as supporting content generation, falling back to whatever is available
// and finally to the built-in default.
func (g *GeminiGenerator) discoverModel(ctx context.Context) string {
	models, err := g.client.ListModels(ctx)
	if err != nil {
		return defaultModel
	}

	available := make(map[string]bool, len(models))
	var first string
	for _, m := range models {
		supported := false
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				supported = true
				break
			}
		}
		if !supported {
			continue
		}
		name := strings.TrimPrefix(m.Name, "models/")
		available[name] = true
		if first == "" {
			first = name
		}
	}

	for _, want := range modelPriority {
		if available[want] {
			return want
		}
	}
	if first != "" {
		return first
	}
	return defaultModel
}

func parseContent(text string) (*Content, error) {
	span := extractJSON(text)
	if span == "" {
		return nil, errors.New("no JSON object in model output")
	}
	var c Content
	if err := json.Unmarshal([]byte(span), &c); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}
	if c.GregorianDate == "" || c.Tithi == "" || c.Abhang == "" || c.Meaning == "" || c.Sant == "" {
		return nil, errors.New("model output missing required fields")
	}
	c.IsFallback = false
	return &c, nil
}

func buildPrompt(t time.Time) string {
	return fmt.Sprintf(`
आज च्या दिवसासाठी खालील माहिती मराठी मध्ये द्या. कृपया संपूर्ण आणि तपशीलवार माहिती द्या.
आजची तारीख: %s

कृपया खालील माहिती JSON format मध्ये द्या:
1. **gregorianDate**: आजची तारीख मराठी मध्ये
2. **tithi**: आजची अचूक मराठी पंचांग तिथी
3. **abhang**: वारकरी संप्रदायातील एक **संपूर्ण** अभंग (कमीत कमी ४-६ ओळी).
4. **meaning**: त्या अभंगाचा **संपूर्ण** अर्थ मराठी मध्ये.
5. **sant**: कोणत्या संताने हे अभंग लिहिले

JSON format:
{
  "gregorianDate": "...",
  "tithi": "...",
  "abhang": "...",
  "meaning": "...",
  "sant": "..."
}`, MarathiDate(t))
}
