package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/Saint-creator/myquicknote-timer/internal/models"
)

// TaskStat summarizes all sessions sharing one note, compared
// case-insensitively. Name carries the casing of the newest session in the
// group because the list is iterated newest first.
type TaskStat struct {
	Name           string
	Count          int
	TotalSeconds   int
	AverageSeconds float64
}

// TodayStat summarizes the sessions saved on the current calendar date.
type TodayStat struct {
	TotalSeconds int
	TaskCount    int
}

// TaskStats groups sessions by lowercased note and computes per-group
// totals and averages. Groups appear in order of first occurrence.
func TaskStats(sessions []models.Session) []TaskStat {
	byKey := make(map[string]*TaskStat)
	var order []string

	for _, session := range sessions {
		key := strings.ToLower(session.Note)
		stat, ok := byKey[key]
		if !ok {
			stat = &TaskStat{Name: session.Note}
			byKey[key] = stat
			order = append(order, key)
		}
		stat.Count++
		stat.TotalSeconds += session.DurationSeconds
	}

	stats := make([]TaskStat, 0, len(order))
	for _, key := range order {
		stat := byKey[key]
		stat.AverageSeconds = float64(stat.TotalSeconds) / float64(stat.Count)
		stats = append(stats, *stat)
	}
	return stats
}

// TodayStats sums the sessions whose creation date matches now's calendar
// date, in now's location. A rolling 24h window is deliberately not used.
func TodayStats(sessions []models.Session, now time.Time) TodayStat {
	var stat TodayStat
	tasks := make(map[string]struct{})

	for _, session := range sessions {
		if !sameDay(session.CreatedAt, now) {
			continue
		}
		stat.TotalSeconds += session.DurationSeconds
		tasks[strings.ToLower(session.Note)] = struct{}{}
	}

	stat.TaskCount = len(tasks)
	return stat
}

func sameDay(at, now time.Time) bool {
	y1, m1, d1 := at.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FormatSeconds renders a second count as HH:MM:SS. Hours grow past 99
// rather than wrapping.
func FormatSeconds(total int) string {
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}
