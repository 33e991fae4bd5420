// Package generator produces synthetic production incidents from
// per-company template sets. It is the template provider for the
// simulation service: scoring never depends on generated text.
package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// Time-of-day buckets used to flavor incident descriptions.
const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

// Incident is a generated incident instance ready to be persisted and
// presented to the user.
type Incident struct {
	Title                  string
	Description            string
	Severity               string
	TimeLimitMinutes       int
	AffectedServices       []string
	ErrorLogs              string
	CodebaseContext        string
	MonitoringDashboardURL string
}

// ScheduledIncident is an incident placed on a simulated work day.
type ScheduledIncident struct {
	Incident
	ScheduledTime  string
	SequenceNumber int
}

// Generator creates incidents for a single company profile. It is not
// safe for concurrent use; create one per request or guard externally.
type Generator struct {
	profile CompanyProfile
	rng     *rand.Rand
}

// New returns a time-seeded generator for the given company slug.
// Unknown slugs use the generic fallback profile.
func New(companySlug string) *Generator {
	return NewWithRand(companySlug, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a generator with a caller-controlled random source,
// used by tests for deterministic output.
func NewWithRand(companySlug string, rng *rand.Rand) *Generator {
	return &Generator{
		profile: ProfileFor(strings.ToLower(companySlug)),
		rng:     rng,
	}
}

// Profile exposes the resolved company profile.
func (g *Generator) Profile() CompanyProfile {
	return g.profile
}

// Generate picks a random incident template, optionally filtered by
// severity, and customizes it for the time of day. A severity with no
// matching template falls back to the full template set rather than
// failing.
func (g *Generator) Generate(severity, timeOfDay string) Incident {
	candidates := g.profile.Incidents
	if severity != "" {
		filtered := make([]Template, 0, len(candidates))
		for _, tpl := range candidates {
			if tpl.Severity == severity {
				filtered = append(filtered, tpl)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	tpl := candidates[g.rng.Intn(len(candidates))]

	return Incident{
		Title:                  tpl.Title,
		Description:            describeForTimeOfDay(tpl.Description, timeOfDay),
		Severity:               tpl.Severity,
		TimeLimitMinutes:       tpl.TimeLimitMinutes,
		AffectedServices:       append([]string(nil), tpl.AffectedServices...),
		ErrorLogs:              tpl.ErrorLogs,
		CodebaseContext:        tpl.CodebaseContext,
		MonitoringDashboardURL: monitoringDashboards[g.rng.Intn(len(monitoringDashboards))],
	}
}

// Schedule lays out numIncidents incidents across a simulated work day,
// weighting severity by business hours. Passing numIncidents <= 0 picks a
// day-appropriate count.
func (g *Generator) Schedule(workStart, workEnd, numIncidents int) []ScheduledIncident {
	if workEnd <= workStart {
		workStart, workEnd = 9, 17
	}
	if numIncidents <= 0 {
		low := int(g.profile.IncidentFrequency * 8)
		if low < 2 {
			low = 2
		}
		numIncidents = low + g.rng.Intn(6-low+1)
	}

	type slot struct{ hour, minute int }
	slots := make([]slot, numIncidents)
	for i := range slots {
		slots[i] = slot{
			hour:   workStart + g.rng.Intn(workEnd-workStart),
			minute: g.rng.Intn(60),
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].hour != slots[j].hour {
			return slots[i].hour < slots[j].hour
		}
		return slots[i].minute < slots[j].minute
	})

	scheduled := make([]ScheduledIncident, 0, numIncidents)
	for i, s := range slots {
		incident := g.Generate(g.severityForHour(s.hour), TimeOfDayForHour(s.hour))
		scheduled = append(scheduled, ScheduledIncident{
			Incident:       incident,
			ScheduledTime:  formatClock(s.hour, s.minute),
			SequenceNumber: i + 1,
		})
	}
	return scheduled
}

// severityForHour biases severity toward critical during business hours.
func (g *Generator) severityForHour(hour int) string {
	if hour >= 9 && hour <= 17 {
		return g.weightedSeverity([]string{"P0", "P1", "P2"}, []float64{0.2, 0.4, 0.4})
	}
	return g.weightedSeverity([]string{"P1", "P2", "P3"}, []float64{0.3, 0.5, 0.2})
}

func (g *Generator) weightedSeverity(severities []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := g.rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return severities[i]
		}
	}
	return severities[len(severities)-1]
}

// TimeOfDayForHour maps an hour of day to the description buckets.
func TimeOfDayForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return TimeOfDayMorning
	case hour >= 12 && hour < 18:
		return TimeOfDayAfternoon
	default:
		return TimeOfDayEvening
	}
}

func describeForTimeOfDay(description, timeOfDay string) string {
	switch timeOfDay {
	case TimeOfDayMorning:
		return description + " This issue was first reported during peak morning login hours."
	case TimeOfDayAfternoon:
		return description + " Performance degradation noticed during afternoon traffic spike."
	case TimeOfDayEvening:
		return description + " Issue appeared after recent deployment in the evening."
	default:
		return description
	}
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
