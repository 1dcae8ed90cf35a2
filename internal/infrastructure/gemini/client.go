package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API for the one AI-assisted feature the
// service offers: a short congratulatory note when two members become
// a mutual connection. The client is optional everywhere; callers must
// tolerate a nil *Client.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// GenerateConnectionNote writes a one-line note for a newly formed
// mutual connection. API failures fall back to a stock note so the
// connection flow never depends on Gemini availability.
func (c *Client) GenerateConnectionNote(ctx context.Context, senderName, receiverName string, sharedTraits []string) (string, error) {
	prompt := fmt.Sprintf(`
		Two members of a matrimonial app, %s and %s, just became a mutual connection.
		Shared traits: %v

		Task: Write one warm, respectful sentence celebrating the connection.
		Tone: matrimonial, family-friendly. No emojis.
		Output: just the sentence.
	`, senderName, receiverName, sharedTraits)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		fmt.Printf("gemini unavailable, using fallback connection note: %v\n", err)
		return fallbackNote(senderName, receiverName), nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallbackNote(senderName, receiverName), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	note := strings.TrimSpace(sb.String())
	if note == "" {
		return fallbackNote(senderName, receiverName), nil
	}
	return note, nil
}

func fallbackNote(senderName, receiverName string) string {
	return fmt.Sprintf("%s and %s have expressed mutual interest. A wonderful beginning!", senderName, receiverName)
}
