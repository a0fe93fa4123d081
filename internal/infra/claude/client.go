package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

const (
	DefaultModel = "claude-sonnet-4-5"
	maxTokens    = 4096
)

var ErrEmptyAPIKey = errors.New("ANTHROPIC_API_KEY is empty")

// Client generates riddles with the Anthropic Messages API.
type Client struct {
	client *anthropic.Client
	model  string
}

// New creates an Anthropic client.
func New(apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}

	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Client{client: &client, model: model}, nil
}

// Generate sends the prompts and returns the text of the first text block.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   maxTokens,
		Temperature: param.NewOpt(0.9),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic: new message: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	return "", errors.New("anthropic: no text content in response")
}
