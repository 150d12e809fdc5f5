// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import "github.com/pdiddy/report-engine/pkg/types"

// Priority weights by rule category. Higher means a stronger class of
// signal when confidence ties.
const (
	priorityEquipment = 1
	priorityLocation  = 1
	priorityCondition = 2
	prioritySeverity  = 3
)

// defaultTable is the built-in rule set for industrial maintenance
// reports: equipment, condition, location, and severity tags.
func defaultTable() []types.TagRule {
	return []types.TagRule{
		// Equipment
		{Tag: "Valve", Keywords: []string{"valve", "gate", "ball valve", "check valve", "relief valve"},
			Patterns: []string{`\bvalve\b`, `\bgate\b`, `\bball\s+valve\b`},
			Priority: priorityEquipment, Description: "Valve-related equipment"},
		{Tag: "Compressor", Keywords: []string{"compressor", "pump", "blower"},
			Patterns: []string{`\bcompressor\b`, `\bpump\b`, `\bblower\b`},
			Priority: priorityEquipment, Description: "Compression equipment"},
		{Tag: "Pipeline", Keywords: []string{"pipe", "pipeline", "piping", "line"},
			Patterns: []string{`\bpipe\b`, `\bpipeline\b`, `\bpiping\b`, `\bline\b`},
			Priority: priorityEquipment, Description: "Pipeline infrastructure"},
		{Tag: "Tank", Keywords: []string{"tank", "vessel", "container", "storage"},
			Patterns: []string{`\btank\b`, `\bvessel\b`, `\bcontainer\b`, `\bstorage\b`},
			Priority: priorityEquipment, Description: "Storage equipment"},
		{Tag: "Sensor", Keywords: []string{"sensor", "gauge", "meter", "detector"},
			Patterns: []string{`\bsensor\b`, `\bgauge\b`, `\bmeter\b`, `\bdetector\b`},
			Priority: priorityEquipment, Description: "Monitoring equipment"},

		// Condition
		{Tag: "Corrosion", Keywords: []string{"rust", "rusted", "corrosion", "corroded", "oxidation"},
			Patterns: []string{`\brust\w*\b`, `\bcorrod\w*\b`, `\boxid\w*\b`},
			Priority: priorityCondition, Description: "Corrosion-related issues"},
		{Tag: "Leak", Keywords: []string{"leak", "leaking", "drip", "seepage", "spill"},
			Patterns: []string{`\bleak\w*\b`, `\bdrip\w*\b`, `\bseep\w*\b`, `\bspill\w*\b`},
			Priority: priorityCondition, Description: "Leakage issues"},
		{Tag: "Vibration", Keywords: []string{"vibration", "vibrating", "shake", "shaking", "tremor"},
			Patterns: []string{`\bvibrat\w*\b`, `\bshak\w*\b`, `\btremor\b`},
			Priority: priorityCondition, Description: "Vibration issues"},
		{Tag: "Noise", Keywords: []string{"noise", "loud", "grinding", "squealing", "rattling"},
			Patterns: []string{`\bnoise\b`, `\bloud\b`, `\bgrind\w*\b`, `\bsqueal\w*\b`, `\brattl\w*\b`},
			Priority: priorityCondition, Description: "Noise issues"},
		{Tag: "Temperature", Keywords: []string{"hot", "cold", "overheating", "temperature", "thermal"},
			Patterns: []string{`\bhot\b`, `\bcold\b`, `\boverheat\w*\b`, `\btemperature\b`, `\bthermal\b`},
			Priority: priorityCondition, Description: "Temperature issues"},
		{Tag: "Pressure", Keywords: []string{"pressure", "high pressure", "low pressure", "psi"},
			Patterns: []string{`\bpressure\b`, `\bpsi\b`, `\bbar\b`},
			Priority: priorityCondition, Description: "Pressure-related issues"},
		{Tag: "Damage", Keywords: []string{"damage", "damaged", "broken", "cracked", "fractured"},
			Patterns: []string{`\bdamag\w*\b`, `\bbroken\b`, `\bcrack\w*\b`, `\bfractur\w*\b`},
			Priority: priorityCondition, Description: "Physical damage"},

		// Location
		{Tag: "Compressor Zone", Keywords: []string{"compressor 1", "compressor 2", "compressor area", "comp zone"},
			Patterns: []string{`\bcompressor\s+\d+\b`, `\bcomp\s+zone\b`, `\bcompressor\s+area\b`},
			Priority: priorityLocation, Description: "Compressor area"},
		{Tag: "Pump Station", Keywords: []string{"pump station", "pump house", "pump room"},
			Patterns: []string{`\bpump\s+station\b`, `\bpump\s+house\b`, `\bpump\s+room\b`},
			Priority: priorityLocation, Description: "Pump station area"},
		{Tag: "Control Room", Keywords: []string{"control room", "control panel", "operator station"},
			Patterns: []string{`\bcontrol\s+room\b`, `\bcontrol\s+panel\b`, `\boperator\s+station\b`},
			Priority: priorityLocation, Description: "Control room area"},
		{Tag: "Field", Keywords: []string{"field", "outdoor", "outside", "external"},
			Patterns: []string{`\bfield\b`, `\boutdoor\b`, `\boutside\b`, `\bexternal\b`},
			Priority: priorityLocation, Description: "Field location"},

		// Severity
		{Tag: "Critical", Keywords: []string{"critical", "urgent", "immediate", "emergency", "severe"},
			Patterns: []string{`\bcritical\b`, `\burgent\b`, `\bimmediate\b`, `\bemergency\b`, `\bsevere\b`},
			Priority: prioritySeverity, Description: "Critical severity"},
		{Tag: "High Priority", Keywords: []string{"high", "priority", "important", "significant"},
			Patterns: []string{`\bhigh\s+priority\b`, `\bimportant\b`, `\bsignificant\b`},
			Priority: prioritySeverity, Description: "High priority"},
		{Tag: "Routine", Keywords: []string{"routine", "normal", "regular", "scheduled"},
			Patterns: []string{`\broutine\b`, `\bnormal\b`, `\bregular\b`, `\bscheduled\b`},
			Priority: prioritySeverity, Description: "Routine maintenance"},
	}
}

// Default returns the built-in maintenance rule library.
func Default() *Library {
	lib, err := New(defaultTable())
	if err != nil {
		// The table is static; a failure here is a programming error.
		panic(err)
	}
	return lib
}
