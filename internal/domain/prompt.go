package domain

// PromptSection is an ephemeral named text block with a fixed ordering
// priority. Sections with empty content are filtered before assembly.
type PromptSection struct {
	Name     string
	Content  string
	Priority int
}

// Section priorities, highest first. Assembly sorts descending with a stable
// sort, so equal priorities keep their build order.
const (
	PriorityBaseData       = 100
	PriorityMemory         = 95
	PriorityDailyPrecision = 90
	PriorityAdvancedTiming = 85
	PriorityDaeunSync      = 80
	PriorityAdvancedAstro  = 75
	PriorityHarmonics      = 70
	PriorityLifePrediction = 65
	PriorityMonthly        = 55
	PriorityWeekly         = 50
)
