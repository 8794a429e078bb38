package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mhollstein/clausescreen/internal/util"
)

// LanguageToolChecker implements the Checker interface against a
// LanguageTool server (hosted or self-hosted)
type LanguageToolChecker struct {
	baseURL    string
	language   string
	httpClient *http.Client
	config     Config
}

// LanguageTool API structures
type languageToolResponse struct {
	Matches []languageToolMatch `json:"matches"`
}

type languageToolMatch struct {
	Message string `json:"message"`
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Rule    struct {
		ID       string `json:"id"`
		Category struct {
			ID string `json:"id"`
		} `json:"category"`
	} `json:"rule"`
}

// NewLanguageToolChecker creates a new LanguageTool checker
func NewLanguageToolChecker(config Config) (*LanguageToolChecker, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8010"
	}

	language := config.Language
	if language == "" {
		language = "en-US"
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	proxyFunc := util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy)

	return &LanguageToolChecker{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		language: language,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: proxyFunc,
			},
		},
		config: config,
	}, nil
}

// Name returns the provider name
func (c *LanguageToolChecker) Name() string {
	return "languagetool"
}

// IsAvailable checks if the LanguageTool server is reachable
func (c *LanguageToolChecker) IsAvailable(ctx context.Context) bool {
	endpoint := fmt.Sprintf("%s/v2/languages", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Check submits text to the LanguageTool /v2/check endpoint and returns
// the number of reported matches
func (c *LanguageToolChecker) Check(ctx context.Context, text string) (int, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	endpoint := fmt.Sprintf("%s/v2/check", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("languagetool request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("languagetool returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var ltResp languageToolResponse
	if err := json.Unmarshal(body, &ltResp); err != nil {
		return 0, fmt.Errorf("parse response: %w", err)
	}

	return len(ltResp.Matches), nil
}
