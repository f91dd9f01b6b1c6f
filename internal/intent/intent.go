// Package intent routes free-text queries to a fixed set of analysis topics.
package intent

import "strings"

// Topic is one of the analysis categories the facade can answer for.
type Topic string

const (
	TopicFailure    Topic = "failure_analysis"
	TopicAnomaly    Topic = "anomaly_detection"
	TopicBottleneck Topic = "bottleneck_analysis"
	TopicEquipment  Topic = "equipment_performance"
	TopicOverview   Topic = "overview"
)

// Rule pairs a topic with the keywords that select it.
type Rule struct {
	Topic    Topic
	Keywords []string
}

// Rules is the classification table, evaluated in order with first match
// winning. The order is part of the contract: a query mentioning both
// failures and anomalies is a failure-analysis query.
var Rules = []Rule{
	{TopicFailure, []string{"failure", "fail", "error"}},
	{TopicAnomaly, []string{"anomaly", "anomalies", "unusual"}},
	{TopicBottleneck, []string{"bottleneck", "slow", "delay", "time", "performance"}},
	{TopicEquipment, []string{"equipment", "machine", "station"}},
}

// Classify maps a query to its topic. Matching is case-insensitive substring
// containment over the rule table; unmatched queries get the overview topic.
func Classify(query string) Topic {
	lower := strings.ToLower(query)
	for _, r := range Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Topic
			}
		}
	}
	return TopicOverview
}
