// Package canned implements a provider that answers from pre-authored
// analysis texts, selected by the intent classifier. It stands in for a real
// model so the API surface can be exercised without inference hardware.
package canned

import (
	"context"

	"github.com/processgpt/ai-facade-go/internal/intent"
	"github.com/processgpt/ai-facade-go/internal/metrics"
	"github.com/processgpt/ai-facade-go/internal/provider"
)

type Provider struct {
	model     string
	templates intent.TemplateSet
	recorder  *metrics.Recorder
}

// New creates a canned provider answering as model. recorder may be nil.
func New(model string, templates intent.TemplateSet, recorder *metrics.Recorder) *Provider {
	return &Provider{model: model, templates: templates, recorder: recorder}
}

// Chat classifies the first user message and returns its topic text. The
// conversation may be empty; the classifier then sees an empty query and the
// overview topic is returned.
func (p *Provider) Chat(ctx context.Context, req *provider.ChatRequest) (*provider.ChatResponse, error) {
	query := provider.UserQuery(req.Messages)
	topic := intent.Classify(query)
	if p.recorder != nil {
		p.recorder.RecordChat(string(topic))
	}
	return &provider.ChatResponse{
		Choices: []provider.Choice{{
			Message: provider.Message{
				Role:    provider.RoleAssistant,
				Content: p.templates.Render(topic, query),
			},
			FinishReason: provider.FinishStop,
		}},
		Model: p.model,
	}, nil
}
