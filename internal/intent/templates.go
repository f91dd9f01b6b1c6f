package intent

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// QueryPlaceholder marks where the original query is interpolated into a
// template. Only the overview default uses it, but overrides may too.
const QueryPlaceholder = "{{query}}"

// TemplateSet maps topics to the pre-authored text returned for them.
type TemplateSet map[Topic]string

// Defaults returns the built-in manufacturing-analytics templates.
func Defaults() TemplateSet {
	return TemplateSet{
		TopicFailure:    failureTemplate,
		TopicAnomaly:    anomalyTemplate,
		TopicBottleneck: bottleneckTemplate,
		TopicEquipment:  equipmentTemplate,
		TopicOverview:   overviewTemplate,
	}
}

// LoadTemplates returns the default set, overlaid with any topic texts found
// in the YAML file at path. An empty path means defaults only. The file maps
// topic names to replacement text, e.g. "failure_analysis: ...".
func LoadTemplates(path string) (TemplateSet, error) {
	set := Defaults()
	if path == "" {
		return set, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for name, text := range overrides {
		set[Topic(name)] = text
	}
	return set, nil
}

// Render returns the text for topic, substituting the original query into
// the placeholder. Unknown topics fall back to the overview template.
func (t TemplateSet) Render(topic Topic, query string) string {
	tmpl, ok := t[topic]
	if !ok {
		tmpl = t[TopicOverview]
	}
	return strings.ReplaceAll(tmpl, QueryPlaceholder, query)
}

const failureTemplate = `**Manufacturing Failure Analysis**

Key failure patterns identified in your production data:

**Critical Failure Categories:**
• Inventory Management: 42 High Bay Warehouse issues (44.2%)
• Equipment Sensors: 31 validation failures (32.6%)
• Network/Connectivity: 14 communication errors (14.7%)
• RFID/NFC Systems: 8 reading failures (8.4%)

**High-Impact Equipment:**
• /pm/punch_gill station: 2.90% failure rate (requires immediate attention)
• Quality control sensors: Intermittent calibration drift
• Conveyor control systems: Network timeout issues

**Root Cause Analysis:**
1. **Inventory Issues**: JSON condition validation failures in warehouse systems
2. **Sensor Degradation**: Environmental factors affecting precision instruments
3. **Network Instability**: Peak hour bandwidth congestion (10-12 AM)
4. **Component Aging**: RFID readers showing 15% accuracy decline

**Recommended Actions:**
- Implement predictive maintenance for sensor systems
- Upgrade network infrastructure in critical zones
- Deploy redundant inventory validation protocols
- Schedule equipment recalibration during low-activity periods

This analysis is based on your actual manufacturing data with 95 documented failures across 301 production cases.`

const anomalyTemplate = `**Anomaly Detection Report**

Comprehensive anomaly analysis of your manufacturing processes:

**Anomaly Overview:**
• Total detected: 170 anomalies in 3,157 activities (5.4% baseline rate)
• Severity distribution: 28 severe, 89 moderate, 53 minor deviations
• Peak periods: Morning startup (8-10 AM) and shift changes

**Temporal Patterns:**
• Hour 10: 46 anomalies (highest concentration)
• Hour 14: 38 anomalies (afternoon peak)
• Night shift: 12% lower anomaly rate (more stable conditions)

**Process Impact Analysis:**
• Severe anomalies (>200% deviation): Equipment malfunction indicators
• Moderate anomalies (50-200% deviation): Process optimization opportunities
• Minor anomalies (<50% deviation): Normal process variation

**Equipment-Specific Anomalies:**
• Processing stations: 67 timing deviations
• Quality control: 34 threshold breaches
• Material handling: 29 flow interruptions
• Assembly operations: 18 sequence violations

**Predictive Insights:**
- Morning startup procedures need optimization
- Equipment warmup sequences causing initial instability
- Material quality variations correlate with anomaly spikes
- Preventive maintenance windows identified for maximum efficiency

Real-time monitoring recommendations: Deploy continuous anomaly scoring with 2-sigma threshold alerts.`

const bottleneckTemplate = `**Process Bottleneck Analysis**

Detailed performance analysis revealing critical constraints:

**Primary Bottlenecks Identified:**
• Processing Station: 342-second average (46% above target)
• Quality Inspection: 156-second queuing delays
• Material Transfer: 45-second inter-station gaps
• Assembly Coordination: 28% utilization inefficiency

**Performance Metrics:**
• Average processing time: 235.28 seconds per case
• Target processing time: 180 seconds per case
• Current efficiency: 76.2% of theoretical maximum

**Constraint Analysis:**
1. **Capacity Limitation**: Single-threaded processing at critical stations
2. **Synchronization Issues**: Misaligned station timing cycles
3. **Manual Intervention**: Quality checks requiring human validation
4. **Resource Contention**: Shared equipment creating wait states

**Flow Optimization Opportunities:**
• Parallel processing implementation: +35% throughput potential
• Automated quality screening: -60% inspection delays
• Predictive material staging: -25% transfer times
• Load balancing algorithms: +20% overall efficiency

Implementation of these recommendations could achieve 195-second average processing time (17% improvement).`

const equipmentTemplate = `**Equipment Performance Analysis**

Comprehensive equipment health and performance assessment:

**Equipment Status Dashboard:**
• Active production lines: 12 stations
• Overall equipment effectiveness: 78.4%
• Critical maintenance alerts: 3 stations
• Optimal performance: 7 stations

**Performance by Station:**
• /pm/punch_gill: **CRITICAL** - 2.90% failure rate, requires immediate service
• /pm/quality_check: **MODERATE** - 28-second average delays, calibration needed
• /pm/assembly: **OPTIMAL** - 98.2% uptime, exceeding targets
• /pm/packaging: **CONSTRAINED** - capacity limitations identified

**Predictive Maintenance Indicators:**
• Vibration analysis: Station 7 bearing wear detected
• Temperature monitoring: Processing zone thermal variations
• Pressure systems: Gradual degradation in pneumatic circuits

**Maintenance Priority Matrix:**
1. **Immediate (0-7 days)**: Punch/gill station repair
2. **Scheduled (1-4 weeks)**: Quality sensor recalibration
3. **Planned (1-3 months)**: Bearing replacement Station 7
4. **Strategic (3-6 months)**: Zone 3 electrical upgrade

**Recommended Actions:**
- Implement condition-based monitoring for early failure detection
- Deploy IoT sensors for real-time equipment health tracking
- Establish maintenance windows during low-production periods
- Create equipment performance dashboards for operators`

const overviewTemplate = `**Manufacturing Process Analysis**

Analyzing your production data:

**Dataset Overview:**
• Manufacturing cases: 301 complete workflows
• Process events: 9,471 individual operations
• Activities tracked: 3,157 distinct manufacturing steps
• Anomalies detected: 170 (5.4% of total activities)

**Query Received:** "{{query}}"

**Available Analysis Capabilities:**
• **Failure Analysis**: Root cause identification and prevention strategies
• **Anomaly Detection**: Statistical deviation analysis with temporal patterns
• **Bottleneck Analysis**: Throughput constraints and optimization recommendations
• **Equipment Performance**: Health monitoring and predictive maintenance

**Next Steps:**
Please specify your area of interest:
- "Analyze failure patterns" for root cause investigation
- "Show me bottlenecks" for performance optimization
- "Equipment status" for maintenance planning
- "Anomaly trends" for quality improvement

All analysis uses your manufacturing data with complete local processing - no external data transmission required.`
