package technique

// catalog holds every technique in display order. Insertion order is
// preserved by List and matters for the UI, not for recommendation.
var catalog = []Technique{
	{
		Key:  BoxBreathing,
		Name: "Box Breathing",
		Description: "Steady, four-part breathing to settle the nervous " +
			"system and restore balance.",
		Intention:       "Find calm and focus in just a few minutes.",
		DurationMinutes: 5,
		Benefits: []string{
			"Stabilises the heart rate",
			"Clears mental fog",
			"Creates a sense of grounded presence",
		},
		Pattern: Pattern{InhaleSecs: 4, HoldSecs: 4, ExhaleSecs: 4, Cycles: 12},
		Cues: []string{
			"Inhale smoothly for four counts",
			"Hold with soft shoulders",
			"Exhale fully and evenly",
			"Pause briefly before the next round",
		},
	},
	{
		Key:  BodyScan,
		Name: "Body Scan",
		Description: "A gentle tour through the body that softens tension " +
			"and invites deep rest.",
		Intention:       "Release the day and prepare for nourishing sleep.",
		DurationMinutes: 12,
		Benefits: []string{
			"Eases physical tightness",
			"Calms racing thoughts",
			"Supports better sleep quality",
		},
		Pattern: Pattern{InhaleSecs: 5, ExhaleSecs: 5},
		Cues: []string{
			"Notice contact points with the ground",
			"Scan slowly from toes to crown",
			"Breathe into any sensations that arise",
			"Let heaviness melt into the earth",
		},
	},
	{
		Key:  Mindfulness,
		Name: "Mindful Breathing",
		Description: "Rest in the simplicity of natural breath while " +
			"observing thoughts without judgement.",
		Intention:       "Cultivate steady awareness and a spacious mind.",
		DurationMinutes: 8,
		Benefits: []string{
			"Enhances focus",
			"Reduces stress reactivity",
			"Builds emotional clarity",
		},
		Pattern: Pattern{InhaleSecs: 4, ExhaleSecs: 6},
		Cues: []string{
			"Rest attention on the tip of the nose",
			"Let the breath be easy and unforced",
			"Label distractions gently",
			"Return kindly to the next inhale",
		},
	},
	{
		Key:  LovingKind,
		Name: "Loving Kindness",
		Description: "Nurture warmth and compassion through affirmations " +
			"for yourself and others.",
		Intention:       "Open the heart and reconnect with kindness.",
		DurationMinutes: 10,
		Benefits: []string{
			"Increases positive emotion",
			"Softens self-criticism",
			"Strengthens connection to others",
		},
		Pattern: Pattern{InhaleSecs: 4, ExhaleSecs: 6},
		Cues: []string{
			"Anchor in the breath for a few rounds",
			"Repeat phrases like “May I be at ease”",
			"Extend the wishes to someone you love",
			"Radiate the well-wishing outward",
		},
	},
	{
		Key:  Mantra,
		Name: "Mantra Meditation",
		Description: "Silently repeat a chosen phrase to steady the mind " +
			"and invite clarity.",
		Intention:       "Soften distractions by resting on a gentle mantra.",
		DurationMinutes: 15,
		Benefits: []string{
			"Improves concentration",
			"Eases anxious rumination",
			"Supports consistent daily practice",
		},
		Pattern: Pattern{InhaleSecs: 4, ExhaleSecs: 4},
		Cues: []string{
			"Select a soothing word or phrase",
			"Whisper it mentally on each breath",
			"If thoughts arise, notice and return",
			"Close with a few grateful breaths",
		},
	},
	{
		Key:  Transcendent,
		Name: "Transcendental Ease",
		Description: "Settle deeply beyond thought with effortless mantra " +
			"repetition.",
		Intention:       "Rest in quiet alertness beneath surface-level thinking.",
		DurationMinutes: 20,
		Benefits: []string{
			"Reduces stress hormones",
			"Enhances emotional resilience",
			"Encourages deeply restorative rest",
		},
		Pattern: Pattern{InhaleSecs: 4, ExhaleSecs: 4},
		Cues: []string{
			"Sit comfortably with eyes closed",
			"Repeat your personal mantra softly",
			"Allow attention to drift as needed",
			"Return gently when you notice wandering",
		},
	},
	{
		Key:  Zen,
		Name: "Zen Stillness",
		Description: "Practice upright stillness with attention on the " +
			"breath and posture.",
		Intention:       "Cultivate calm alertness and spacious awareness.",
		DurationMinutes: 25,
		Benefits: []string{
			"Builds equanimity",
			"Encourages disciplined focus",
			"Deepens body-breath connection",
		},
		Pattern: Pattern{InhaleSecs: 4, ExhaleSecs: 6},
		Cues: []string{
			"Sit tall with relaxed shoulders",
			"Let the breath flow through the nose",
			"Count the breath from one to ten",
			"Reset the count when the mind wanders",
		},
	},
	{
		Key:  YogaNidra,
		Name: "Yoga Nidra Drift",
		Description: "Guide awareness through the body and imagination for " +
			"deep rest.",
		Intention:       "Melt into profound relaxation while remaining gently aware.",
		DurationMinutes: 30,
		Benefits: []string{
			"Supports restorative sleep",
			"Soothes chronic tension",
			"Restores nervous system balance",
		},
		Pattern: Pattern{InhaleSecs: 4, ExhaleSecs: 6},
		Cues: []string{
			"Settle into a reclined, supported posture",
			"Rotate awareness through the body slowly",
			"Visualise comforting imagery or light",
			"Stay awake with effortless, slow breathing",
		},
	},
	{
		Key:  NadiShodhana,
		Name: "Alternate Nostril Breath",
		Description: "Balance the subtle energy channels with alternating " +
			"nasal breathing.",
		Intention:       "Reset when feeling scattered or overstimulated.",
		DurationMinutes: 6,
		Benefits: []string{
			"Balances nervous system",
			"Clears lingering agitation",
			"Brightens concentration",
		},
		Pattern: Pattern{InhaleSecs: 4, HoldSecs: 2, ExhaleSecs: 4, Cycles: 10},
		Cues: []string{
			"Use the right thumb to close the right nostril",
			"Breathe in through the left, then switch",
			"Keep the shoulders relaxed",
			"Finish with a deep, even breath through both nostrils",
		},
	},
}
