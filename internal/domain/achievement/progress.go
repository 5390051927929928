package achievement

import "time"

const (
	dayLayout = "2006-01-02"

	viewXP   = 1
	reviewXP = 2
	levelXP  = 100
)

// Progress aggregates the counters that achievements and XP derive from.
type Progress struct {
	FactsViewed       int
	Reviews           int
	CorrectStreak     int
	BestCorrectStreak int
	DecksUploaded     int
	DecksCompleted    int
	SessionsCompleted int
	CurrentStreak     int
	LongestStreak     int
	LastStudyDay      string // YYYY-MM-DD in the server's time zone
	XP                int
}

// RecordView counts a fact shown to the user.
func (p *Progress) RecordView(now time.Time) {
	p.FactsViewed++
	p.XP += viewXP
	p.RecordStudyDay(now)
}

// RecordReview counts a graded answer.
func (p *Progress) RecordReview(passed bool, now time.Time) {
	p.Reviews++
	if passed {
		p.XP += reviewXP
		p.CorrectStreak++
		if p.CorrectStreak > p.BestCorrectStreak {
			p.BestCorrectStreak = p.CorrectStreak
		}
	} else {
		p.CorrectStreak = 0
	}
	p.RecordStudyDay(now)
}

// RecordStudyDay extends or restarts the consecutive-day streak.
func (p *Progress) RecordStudyDay(now time.Time) {
	today := now.Format(dayLayout)
	if p.LastStudyDay == today {
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(dayLayout)
	if p.LastStudyDay == yesterday {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastStudyDay = today
}

// StreakAt returns the current streak as seen on now's day: a streak whose
// last study day is older than yesterday has lapsed.
func (p *Progress) StreakAt(now time.Time) int {
	switch p.LastStudyDay {
	case now.Format(dayLayout), now.AddDate(0, 0, -1).Format(dayLayout):
		return p.CurrentStreak
	default:
		return 0
	}
}

// Level is derived from XP, starting at 1.
func (p *Progress) Level() int {
	return p.XP/levelXP + 1
}
