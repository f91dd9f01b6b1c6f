package intent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Topic
	}{
		{"why did the punch station fail yesterday", TopicFailure},
		{"show me ERROR counts", TopicFailure},
		{"any unusual activity overnight?", TopicAnomaly},
		{"anomalies per shift", TopicAnomaly},
		{"where is the bottleneck", TopicBottleneck},
		{"processing is slow today", TopicBottleneck},
		{"overall performance summary", TopicBottleneck},
		{"equipment status please", TopicEquipment},
		{"machine utilization", TopicEquipment},
		{"hello there", TopicOverview},
		{"", TopicOverview},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.query), "query %q", tt.query)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// A failure keyword outranks every later rule, regardless of position.
	assert.Equal(t, TopicFailure, Classify("what failure anomalies occurred"))
	assert.Equal(t, TopicFailure, Classify("slow equipment error trends"))
	// Anomaly outranks bottleneck and equipment.
	assert.Equal(t, TopicAnomaly, Classify("unusual delays at the station"))
}

func TestClassifyDeterministic(t *testing.T) {
	const query = "Equipment anomaly during night SHIFT"
	first := Classify(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(query))
	}
}

func TestRenderOverviewEchoesQuery(t *testing.T) {
	set := Defaults()
	out := set.Render(TopicOverview, "hello there")
	assert.Contains(t, out, `"hello there"`)
}

func TestRenderUnknownTopicFallsBack(t *testing.T) {
	set := Defaults()
	out := set.Render(Topic("nonsense"), "my query")
	assert.Contains(t, out, "my query")
	assert.Contains(t, out, "Manufacturing Process Analysis")
}

func TestDefaultsCoverAllTopics(t *testing.T) {
	set := Defaults()
	for _, r := range Rules {
		assert.NotEmpty(t, set[r.Topic], "missing template for %s", r.Topic)
	}
	assert.NotEmpty(t, set[TopicOverview])
}

func TestLoadTemplatesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := strings.Join([]string{
		"failure_analysis: custom failure text",
		"overview: 'you asked: {{query}}'",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	set, err := LoadTemplates(path)
	require.NoError(t, err)

	assert.Equal(t, "custom failure text", set.Render(TopicFailure, ""))
	assert.Equal(t, "you asked: hi", set.Render(TopicOverview, "hi"))
	// Untouched topics keep their defaults.
	assert.Contains(t, set.Render(TopicEquipment, ""), "Equipment Performance Analysis")
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
