package gen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/matzehuels/cardfold/pkg/cache"
	"github.com/matzehuels/cardfold/pkg/errors"
	"github.com/matzehuels/cardfold/pkg/httputil"
	"github.com/matzehuels/cardfold/pkg/observability"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultTextModel   = "gpt-4o-mini"
	defaultImageModel  = "gpt-image-1"
	defaultImageSize   = "1024x1536"
	modelHTTPTimeout   = 120 * time.Second
	defaultResponseTTL = 24 * time.Hour
)

// Client talks to an OpenAI-compatible generative API.
// It handles request shaping, caching, and retry for both the text
// completion and image generation endpoints.
//
// All methods are safe for concurrent use.
type Client struct {
	http       *http.Client
	cache      cache.Cache
	keyer      cache.Keyer
	baseURL    string
	apiKey     string
	textModel  string
	imageModel string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API endpoint, for
// compatible providers or test servers.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithTextModel overrides the text completion model.
func WithTextModel(model string) ClientOption {
	return func(c *Client) { c.textModel = model }
}

// WithImageModel overrides the image generation model.
func WithImageModel(model string) ClientOption {
	return func(c *Client) { c.imageModel = model }
}

// WithCache sets the response cache backend. Defaults to NullCache.
func WithCache(backend cache.Cache) ClientOption {
	return func(c *Client) { c.cache = backend }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a generative API client. The apiKey is sent as a
// bearer token on every request.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		http:       &http.Client{Timeout: modelHTTPTimeout},
		cache:      cache.NewNullCache(),
		keyer:      cache.NewDefaultKeyer(),
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		textModel:  defaultTextModel,
		imageModel: defaultImageModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImageModel returns the configured image generation model name.
func (c *Client) ImageModel() string { return c.imageModel }

// TextModel returns the configured text completion model name.
func (c *Client) TextModel() string { return c.textModel }

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CompleteText sends a prompt to the text model and returns the
// completion. Responses are cached by prompt content.
func (c *Client) CompleteText(ctx context.Context, prompt string) (string, error) {
	key := c.keyer.PromptKey(prompt, cache.PromptKeyOpts{Style: c.textModel})
	if data, ok, _ := c.cache.Get(ctx, key); ok {
		return string(data), nil
	}

	req := chatRequest{
		Model: c.textModel,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}
	var resp chatResponse
	if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New(errors.ErrCodeNetwork, "text model returned no choices")
	}

	text := resp.Choices[0].Message.Content
	_ = c.cache.Set(ctx, key, []byte(text), defaultResponseTTL)
	return text, nil
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
	N      int    `json:"n"`
}

type imageResponse struct {
	Data []struct {
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// GeneratedImage is the raw result of an image generation call.
// Exactly one of URL and Data is set, depending on how the provider
// returns images.
type GeneratedImage struct {
	URL  string
	Data []byte
}

// GenerateImage sends a prompt to the image model and returns either
// the hosted URL or the decoded image bytes. Responses are cached by
// prompt hash and model.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	key := c.keyer.ArtworkKey(cache.Hash([]byte(prompt)), cache.ArtworkKeyOpts{
		Model:       c.imageModel,
		AspectRatio: defaultImageSize,
	})
	if data, ok, _ := c.cache.Get(ctx, key); ok {
		return &GeneratedImage{Data: data}, nil
	}

	req := imageRequest{
		Model:  c.imageModel,
		Prompt: prompt,
		Size:   defaultImageSize,
		N:      1,
	}
	var resp imageResponse
	if err := c.post(ctx, "/images/generations", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New(errors.ErrCodeNetwork, "image model returned no images")
	}

	img := resp.Data[0]
	if img.B64JSON != "" {
		data, err := base64.StdEncoding.DecodeString(img.B64JSON)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "decoding image payload")
		}
		_ = c.cache.Set(ctx, key, data, defaultResponseTTL)
		return &GeneratedImage{Data: data}, nil
	}
	return &GeneratedImage{URL: img.URL}, nil
}

// post sends a JSON request and decodes the JSON response, retrying
// transient failures with exponential backoff.
func (c *Client) post(ctx context.Context, path string, body, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	return httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		observability.HTTP().OnRequest(ctx, http.MethodPost, req.URL.Host, path)
		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			observability.HTTP().OnError(ctx, http.MethodPost, req.URL.Host, path, err)
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "calling %s", path)}
		}
		defer resp.Body.Close()
		observability.HTTP().OnResponse(ctx, http.MethodPost, req.URL.Host, path, resp.StatusCode, time.Since(start))

		if err := checkStatus(resp.StatusCode, path); err != nil {
			return err
		}
		return json.NewDecoder(resp.Body).Decode(v)
	})
}

func checkStatus(code int, path string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusTooManyRequests:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeRateLimited, "rate limited on %s", path)}
	case code >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "status %d from %s", code, path)}
	default:
		return errors.New(errors.ErrCodeNetwork, "status %d from %s", code, path)
	}
}
