package service

import (
	"math"
	"time"

	"legal-board-api/internal/domain"
)

// ResponsibleCount is one row of the per-responsible breakdown
type ResponsibleCount struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}

// BoardSummary aggregates one board of a process. Board specific figures are
// nil for boards that do not have them.
type BoardSummary struct {
	Board           string                       `json:"board"`
	Total           int                          `json:"total"`
	ByStatus        map[domain.Status]int        `json:"by_status"`
	ByPriority      map[domain.Priority]int      `json:"by_priority"`
	ByResponsible   map[string]*ResponsibleCount `json:"by_responsable"`
	CompletionRate  float64                      `json:"completion_rate"`
	Upcoming        *int                         `json:"upcoming,omitempty"`
	Past            *int                         `json:"past,omitempty"`
	AvgDurationDays *float64                     `json:"avg_duration_days,omitempty"`
	Expired         *int                         `json:"expired,omitempty"`
}

// Summarize computes the figures every board shares. Only active responsible
// parties found in idx are counted in the breakdown.
func Summarize[P domain.BoardItem](board string, items []P, idx domain.ResponsibleIndex) *BoardSummary {
	s := &BoardSummary{
		Board:         board,
		Total:         len(items),
		ByStatus:      make(map[domain.Status]int, len(domain.Statuses)),
		ByPriority:    make(map[domain.Priority]int),
		ByResponsible: make(map[string]*ResponsibleCount),
	}
	for _, st := range domain.Statuses {
		s.ByStatus[st] = 0
	}

	for _, it := range items {
		s.ByStatus[it.CurrentStatus()]++
		if p := it.Urgency(); p != "" {
			s.ByPriority[p]++
		}
		id := it.Responsible()
		if id == nil {
			continue
		}
		r, ok := idx[*id]
		if !ok || r.State != domain.ResponsibleStatusActive {
			continue
		}
		key := id.String()
		if c, ok := s.ByResponsible[key]; ok {
			c.Count++
		} else {
			s.ByResponsible[key] = &ResponsibleCount{Count: 1, Name: r.FullName()}
		}
	}

	if s.Total > 0 {
		s.CompletionRate = percent(s.ByStatus[domain.StatusDone], s.Total)
	}
	return s
}

// SummarizeScheduled adds upcoming and past counts by scheduled time.
// Items without a date count as neither.
func SummarizeScheduled[P domain.BoardItem](board string, items []P, idx domain.ResponsibleIndex, scheduled func(P) *time.Time, now time.Time) *BoardSummary {
	s := Summarize(board, items, idx)
	var upcoming, past int
	for _, it := range items {
		at := scheduled(it)
		if at == nil {
			continue
		}
		if at.After(now) {
			upcoming++
		} else {
			past++
		}
	}
	s.Upcoming = &upcoming
	s.Past = &past
	return s
}

// SummarizeDeadlines adds the average term length and the expired count
func SummarizeDeadlines(items []*domain.Deadline, idx domain.ResponsibleIndex, now time.Time) *BoardSummary {
	s := Summarize(BoardDeadlines, items, idx)
	var spans []time.Duration
	expired := 0
	for _, d := range items {
		if d.StartDate != nil && d.EndDate != nil {
			spans = append(spans, d.EndDate.Time().Sub(d.StartDate.Time()))
		}
		if d.Expired(now) {
			expired++
		}
	}
	avg := averageDays(spans)
	s.AvgDurationDays = &avg
	s.Expired = &expired
	return s
}

// SummarizeActivities adds the average activity length
func SummarizeActivities(items []*domain.Activity, idx domain.ResponsibleIndex) *BoardSummary {
	s := Summarize(BoardActivities, items, idx)
	var spans []time.Duration
	for _, a := range items {
		if a.StartsAt != nil && a.EndsAt != nil {
			spans = append(spans, a.EndsAt.Sub(*a.StartsAt))
		}
	}
	avg := averageDays(spans)
	s.AvgDurationDays = &avg
	return s
}

func averageDays(spans []time.Duration) float64 {
	if len(spans) == 0 {
		return 0
	}
	var total float64
	for _, d := range spans {
		total += math.Abs(d.Hours() / 24)
	}
	return round2(total / float64(len(spans)))
}

func percent(part, total int) float64 {
	return round2(float64(part) * 100 / float64(total))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
