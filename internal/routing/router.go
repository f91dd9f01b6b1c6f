package routing

import (
	"time"

	"github.com/processgpt/ai-facade-go/internal/provider"
)

// ModelInfo is one entry in the /v1/models listing.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// NewModelInfo builds a listing entry stamped with the current time.
func NewModelInfo(id, ownedBy string) ModelInfo {
	return ModelInfo{ID: id, Object: "model", Created: time.Now().Unix(), OwnedBy: ownedBy}
}

// Router maps model identifiers to providers.
type Router struct {
	models    []ModelInfo
	providers map[string]provider.Provider
	defaultP  provider.Provider
}

func New() *Router {
	return &Router{providers: make(map[string]provider.Provider)}
}

// Register associates a model with a provider implementation. The first
// registered provider becomes the default for unknown model identifiers.
func (r *Router) Register(info ModelInfo, p provider.Provider) {
	r.models = append(r.models, info)
	r.providers[info.ID] = p
	if r.defaultP == nil {
		r.defaultP = p
	}
}

// ProviderFor returns the provider for a model or the default provider.
func (r *Router) ProviderFor(model string) provider.Provider {
	if p, ok := r.providers[model]; ok {
		return p
	}
	return r.defaultP
}

func (r *Router) Models() []ModelInfo {
	return r.models
}
