package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/processgpt/ai-facade-go/internal/intent"
	"github.com/processgpt/ai-facade-go/internal/provider/canned"
)

func TestRouterProvider(t *testing.T) {
	r := New()
	p := canned.New("gemma-2b-it", intent.Defaults(), nil)
	r.Register(NewModelInfo("gemma-2b-it", "local"), p)

	require.NotNil(t, r.ProviderFor("gemma-2b-it"))
	// Unknown models fall back to the first registered provider.
	assert.Equal(t, r.ProviderFor("gemma-2b-it"), r.ProviderFor("gpt-4"))
	assert.Equal(t, r.ProviderFor("gemma-2b-it"), r.ProviderFor(""))
}

func TestRouterModels(t *testing.T) {
	r := New()
	r.Register(NewModelInfo("gemma-2b-it", "google"), canned.New("gemma-2b-it", intent.Defaults(), nil))

	models := r.Models()
	require.Len(t, models, 1)
	assert.Equal(t, "gemma-2b-it", models[0].ID)
	assert.Equal(t, "model", models[0].Object)
	assert.Equal(t, "google", models[0].OwnedBy)
	assert.NotZero(t, models[0].Created)
}
