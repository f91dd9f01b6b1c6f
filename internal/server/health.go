package server

import (
	"os"
	"path/filepath"
)

// Health statuses reported by GET /health.
const (
	StatusHealthy   = "healthy"
	StatusLoading   = "loading"
	StatusUnhealthy = "unhealthy"
)

// HealthStatus is the body of GET /health. It is computed once at startup
// and never mutated while serving.
type HealthStatus struct {
	Status      string `json:"status"`
	Model       string `json:"model"`
	ModelLoaded bool   `json:"model_loaded"`
}

// ProbeModel checks the model artifact directory and builds the health value
// injected into the server. An empty modelsPath skips the check, for
// deployments where the artifacts live inside the upstream runtime.
func ProbeModel(modelName, modelsPath string) HealthStatus {
	loaded := true
	if modelsPath != "" {
		loaded = modelArtifactsPresent(modelsPath)
	}
	status := StatusHealthy
	if !loaded {
		status = StatusLoading
	}
	return HealthStatus{Status: status, Model: modelName, ModelLoaded: loaded}
}

// modelArtifactsPresent reports whether dir exists and holds a model config.
func modelArtifactsPresent(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	return err == nil
}
