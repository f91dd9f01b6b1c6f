package canned

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/processgpt/ai-facade-go/internal/intent"
	"github.com/processgpt/ai-facade-go/internal/metrics"
	"github.com/processgpt/ai-facade-go/internal/provider"
)

func testProvider(rec *metrics.Recorder) *Provider {
	return New("gemma-2b-it", intent.Defaults(), rec)
}

func TestChatReturnsAssistantMessage(t *testing.T) {
	p := testProvider(nil)
	resp, err := p.Chat(context.Background(), &provider.ChatRequest{
		Messages: []provider.Message{
			{Role: provider.RoleUser, Content: "show me equipment status"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)

	choice := resp.Choices[0]
	assert.Equal(t, provider.RoleAssistant, choice.Message.Role)
	assert.Equal(t, provider.FinishStop, choice.FinishReason)
	assert.Equal(t, "gemma-2b-it", resp.Model)
	assert.Contains(t, choice.Message.Content, "failure rate")
}

func TestChatUsesFirstUserMessage(t *testing.T) {
	p := testProvider(nil)
	resp, err := p.Chat(context.Background(), &provider.ChatRequest{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: "you are a helpful assistant"},
			{Role: provider.RoleUser, Content: "any anomalies today?"},
			{Role: provider.RoleAssistant, Content: "checking..."},
			{Role: provider.RoleUser, Content: "equipment status"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Choices[0].Message.Content, "Anomaly Detection Report")
}

func TestChatEmptyConversation(t *testing.T) {
	rec := metrics.New()
	p := testProvider(rec)
	resp, err := p.Chat(context.Background(), &provider.ChatRequest{})
	require.NoError(t, err)
	assert.Contains(t, resp.Choices[0].Message.Content, "Manufacturing Process Analysis")
	assert.Equal(t, 1, rec.ChatCount(string(intent.TopicOverview)))
}

func TestChatEchoesUnmatchedQuery(t *testing.T) {
	p := testProvider(nil)
	resp, err := p.Chat(context.Background(), &provider.ChatRequest{
		Messages: []provider.Message{
			{Role: provider.RoleUser, Content: "hello there"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Choices[0].Message.Content, "hello there")
}
