// Package achievement tracks study progress and the achievements it unlocks.
package achievement

// Achievement is a milestone that awards XP once.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XP          int    `json:"xp"`

	earned func(p *Progress) bool
}

var catalog = []Achievement{
	{ID: "first_fact", Name: "First Steps", Description: "View your first fact", Icon: "🌱", XP: 10,
		earned: func(p *Progress) bool { return p.FactsViewed >= 1 }},
	{ID: "curious_mind", Name: "Curious Mind", Description: "View 10 facts", Icon: "🔍", XP: 25,
		earned: func(p *Progress) bool { return p.FactsViewed >= 10 }},
	{ID: "knowledge_seeker", Name: "Knowledge Seeker", Description: "View 100 facts", Icon: "📚", XP: 100,
		earned: func(p *Progress) bool { return p.FactsViewed >= 100 }},
	{ID: "fact_master", Name: "Fact Master", Description: "View 500 facts", Icon: "🧠", XP: 250,
		earned: func(p *Progress) bool { return p.FactsViewed >= 500 }},
	{ID: "deck_builder", Name: "Deck Builder", Description: "Upload your first deck", Icon: "📦", XP: 20,
		earned: func(p *Progress) bool { return p.DecksUploaded >= 1 }},
	{ID: "deck_finisher", Name: "Deck Finisher", Description: "Go through every fact in a deck", Icon: "🏁", XP: 50,
		earned: func(p *Progress) bool { return p.DecksCompleted >= 1 }},
	{ID: "first_review", Name: "Self Assessment", Description: "Grade your recall for the first time", Icon: "✅", XP: 10,
		earned: func(p *Progress) bool { return p.Reviews >= 1 }},
	{ID: "perfect_ten", Name: "Perfect Ten", Description: "Recall 10 facts in a row", Icon: "🎯", XP: 75,
		earned: func(p *Progress) bool { return p.BestCorrectStreak >= 10 }},
	{ID: "streak_3", Name: "On a Roll", Description: "Study 3 days in a row", Icon: "🔥", XP: 30,
		earned: func(p *Progress) bool { return p.LongestStreak >= 3 }},
	{ID: "streak_7", Name: "Week Warrior", Description: "Study 7 days in a row", Icon: "⚡", XP: 100,
		earned: func(p *Progress) bool { return p.LongestStreak >= 7 }},
	{ID: "session_finisher", Name: "Session Finisher", Description: "Complete a custom study session", Icon: "⏱️", XP: 25,
		earned: func(p *Progress) bool { return p.SessionsCompleted >= 1 }},
}

// Catalog returns every achievement in display order.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an achievement by ID.
func Lookup(achievementID string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == achievementID {
			return a, true
		}
	}
	return Achievement{}, false
}

// Evaluate returns the achievements earned by p that are not in unlocked,
// and credits their XP to p.
func Evaluate(p *Progress, unlocked map[string]bool) []Achievement {
	var earned []Achievement
	for _, a := range catalog {
		if unlocked[a.ID] || !a.earned(p) {
			continue
		}
		p.XP += a.XP
		earned = append(earned, a)
	}
	return earned
}
