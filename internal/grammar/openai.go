package grammar

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIChecker implements the Checker interface using OpenAI chat models
// as a proofreading engine. Useful where no LanguageTool server is
// deployed; the model is instructed to respond with a bare issue count.
type OpenAIChecker struct {
	client *openai.Client
	config Config
}

var countRe = regexp.MustCompile(`\d+`)

// NewOpenAIChecker creates a new OpenAI-backed checker
func NewOpenAIChecker(config Config) (*OpenAIChecker, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIChecker{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (c *OpenAIChecker) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (c *OpenAIChecker) IsAvailable(ctx context.Context) bool {
	_, err := c.client.ListModels(ctx)
	return err == nil
}

// Check asks the model to count grammar, spelling and punctuation issues
// and parses the integer reply
func (c *OpenAIChecker) Check(ctx context.Context, text string) (int, error) {
	model := c.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	timeout := c.config.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	language := c.config.Language
	if language == "" {
		language = "en-US"
	}

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a proofreading engine. You count grammar, spelling and punctuation issues. You respond with a single non-negative integer and nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Count the grammar, spelling and punctuation issues in the following %s text. Respond with the count only.\n\n%s", language, text),
			},
		},
		MaxTokens:   10,
		Temperature: 0, // Deterministic counting
	}

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return 0, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return 0, fmt.Errorf("no response from OpenAI")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	match := countRe.FindString(reply)
	if match == "" {
		return 0, fmt.Errorf("unparseable issue count: %q", reply)
	}

	count, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("parse issue count %q: %w", match, err)
	}

	return count, nil
}
