package lucro

import (
	"time"

	"github.com/etnz/lucro/date"
)

// achievementRule decides whether an achievement is earned by a ledger at now.
type achievementRule struct {
	id  string
	met func(l *Ledger, now time.Time) bool
}

// OrganizedManager has no rule: the ledger keeps no history of stock
// updates to judge it from.
var achievementRules = []achievementRule{
	{id: ActiveEntrepreneur, met: salesEveryDayOfTheWeek},
	{id: RootManager, met: profitEveryDayOfTheMonth},
	{id: GoalCrusher, met: weeklyGoalReached},
}

// EvaluateAchievements unlocks the achievements earned by l at now and
// returns the ones unlocked by this call.
//
// Unlocking is one way: unlocked achievements are never locked again and
// keep their first unlock time.
func EvaluateAchievements(l *Ledger, now time.Time) []Achievement {
	var unlocked []Achievement
	for _, r := range achievementRules {
		a := l.Achievement(r.id)
		if a == nil || a.Unlocked {
			continue
		}
		if r.met(l, now) {
			a.Unlocked = true
			a.UnlockedAt = now
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}

// salesEveryDayOfTheWeek is met when the sales of the last 7 rolling days
// touch 7 distinct calendar days.
func salesEveryDayOfTheWeek(l *Ledger, now time.Time) bool {
	days := make(map[date.Date]struct{})
	for _, s := range l.Sales {
		if now.Sub(s.Time) < 7*date.Day {
			days[date.Of(s.Time)] = struct{}{}
		}
	}
	return len(days) >= 7
}

// profitEveryDayOfTheMonth is met when each of the last 30 calendar days
// ended with a positive profit.
func profitEveryDayOfTheMonth(l *Ledger, now time.Time) bool {
	today := date.Of(now)
	for i := range 30 {
		d := today.Add(-i)
		if !DailyTotal(l.Sales, d).Sub(DailyTotal(l.Expenses, d)).IsPositive() {
			return false
		}
	}
	return true
}

// weeklyGoalReached is met when the sales since the start of the week cover
// the weekly goal.
func weeklyGoalReached(l *Ledger, now time.Time) bool {
	g := l.Goal(date.Weekly)
	if g == nil {
		return false
	}
	return RangeTotal(l.Sales, WeekStart(date.Of(now))).GreaterThanOrEqual(g.Target)
}
