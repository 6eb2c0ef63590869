package models

// Milestone is a fixed day-count threshold with descriptive content. The
// catalog below is read-only reference data; the only persisted milestone
// state is the set of thresholds the user has already been congratulated on.
type Milestone struct {
	Days        int    `json:"days"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ScienceFact string `json:"science_fact"`
	Unlocked    bool   `json:"unlocked"`
}

// Milestones is the full catalog in ascending threshold order.
var Milestones = []Milestone{
	{
		Days:        1,
		Title:       "First Step",
		Description: "You've completed your first day. The journey to reclaim your mind begins.",
		ScienceFact: "Your brain has already started to notice the change. Dopamine levels begin adjusting within hours of reduced stimulation.",
	},
	{
		Days:        3,
		Title:       "Breaking the Loop",
		Description: "Three days strong. The automatic reach for your phone is weakening.",
		ScienceFact: "The acute craving response is peaking. After this, the urge to scroll typically begins to lessen in intensity.",
	},
	{
		Days:        7,
		Title:       "One Week Warrior",
		Description: "A full week! Your attention span is already starting to recover.",
		ScienceFact: "After 7 days, your brain begins reducing deltaFosB proteins associated with compulsive behavior patterns.",
	},
	{
		Days:        14,
		Title:       "Focus Restored",
		Description: "Two weeks of presence. Real cognitive changes are happening.",
		ScienceFact: "Dopamine receptors are healing. Many people report improved focus, better sleep, and mental clarity around this time.",
	},
	{
		Days:        30,
		Title:       "One Month Legend",
		Description: "30 days! You've broken the doom scroll cycle.",
		ScienceFact: "Significant neural rewiring has occurred. The prefrontal cortex is regaining executive control over impulse centers.",
	},
	{
		Days:        60,
		Title:       "Deep Work Unlocked",
		Description: "60 days of reclaiming your attention and creativity.",
		ScienceFact: "New neural pathways are well-established. Your ability to sustain deep focus is dramatically improved.",
	},
	{
		Days:        90,
		Title:       "Neuroplasticity Complete",
		Description: "The iconic 90-day milestone. Your brain is fundamentally rewired.",
		ScienceFact: "Studies suggest 90 days is a critical threshold for neuroplastic changes. Your default mode network has strengthened significantly.",
	},
	{
		Days:        180,
		Title:       "Half Year Hero",
		Description: "Six months of mental freedom. This is who you are now.",
		ScienceFact: "Your brain's stress response and emotional regulation systems have normalized. Anxiety and restlessness have significantly decreased.",
	},
	{
		Days:        365,
		Title:       "Mind Reclaimed",
		Description: "365 days. A full year of living with intention and presence.",
		ScienceFact: "Complete neurological remodeling. Your brain has fully adapted to healthy attention patterns. You've reclaimed your mind.",
	},
}
