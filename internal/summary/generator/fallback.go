package generator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"todo-summary-assistant/internal/model"
	"todo-summary-assistant/pkg/datemath"
)

const (
	uncategorized   = "uncategorized"
	DefaultTopTasks = 5
)

// Fallback builds a summary locally and deterministically.
type Fallback struct {
	dates    *datemath.Parser
	topTasks int
	now      func() time.Time
}

// NewFallback creates a Fallback generator. Urgency by due date is decided
// on calendar days in the parser's timezone.
func NewFallback(dates *datemath.Parser, topTasks int) *Fallback {
	if topTasks <= 0 {
		topTasks = DefaultTopTasks
	}
	return &Fallback{dates: dates, topTasks: topTasks, now: time.Now}
}

// WithClock overrides the time source, used by tests.
func (f *Fallback) WithClock(now func() time.Time) *Fallback {
	f.now = now
	return f
}

type rankedTask struct {
	model.Task
	due    time.Time
	hasDue bool
	urgent bool
}

// Generate implements Generator.
func (f *Fallback) Generate(ctx context.Context, todos []model.Task) (Summary, error) {
	return Summary{Text: f.Summarize(todos), Source: SourceFallback}, nil
}

// Summarize returns the summary text for todos.
func (f *Fallback) Summarize(todos []model.Task) string {
	tasks := pending(todos)
	if len(tasks) == 0 {
		return NoPendingMessage
	}

	now := f.now()
	ranked := make([]rankedTask, len(tasks))
	for i, t := range tasks {
		ranked[i] = f.rank(t, now)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.hasDue != b.hasDue {
			return a.hasDue
		}
		if !a.hasDue {
			return false
		}
		return a.due.Before(b.due)
	})

	sections := []string{countSentence(len(tasks))}
	if line, ok := categorySentence(tasks); ok {
		sections = append(sections, line)
	}

	var urgent []rankedTask
	for _, t := range ranked {
		if t.urgent {
			urgent = append(urgent, t)
		}
	}
	if len(urgent) > 0 {
		sections = append(sections, urgentBlock(urgent))
	}

	top := ranked
	if len(top) > f.topTasks {
		top = top[:f.topTasks]
	}
	sections = append(sections, topBlock(top), adviceBlock(len(urgent) > 0))

	return strings.Join(sections, "\n\n")
}

func (f *Fallback) rank(t model.Task, now time.Time) rankedTask {
	r := rankedTask{Task: t}
	if t.Category != nil && strings.EqualFold(strings.TrimSpace(*t.Category), model.CategoryUrgent) {
		r.urgent = true
	}
	if t.DueDate == nil || strings.TrimSpace(*t.DueDate) == "" {
		return r
	}

	// Unparseable dates sort with undated tasks and never make a task urgent.
	due, err := f.dates.ParseDate(*t.DueDate)
	if err != nil {
		return r
	}
	r.due, r.hasDue = due, true
	if onOrBefore, _ := f.dates.IsOnOrBefore(*t.DueDate, now); onOrBefore {
		r.urgent = true
	}
	return r
}

func countSentence(n int) string {
	if n == 1 {
		return "You have 1 pending task."
	}
	return fmt.Sprintf("You have %d pending tasks.", n)
}

// categorySentence lists counts per category, most frequent first then by
// name. Reported only when tasks span more than one category.
func categorySentence(tasks []model.Task) (string, bool) {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[categoryOf(t)]++
	}
	if len(counts) < 2 {
		return "", false
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%d)", name, counts[name])
	}
	return "Categories: " + strings.Join(parts, ", ") + ".", true
}

func categoryOf(t model.Task) string {
	if t.Category == nil || strings.TrimSpace(*t.Category) == "" {
		return uncategorized
	}
	return strings.TrimSpace(*t.Category)
}

func urgentBlock(tasks []rankedTask) string {
	lines := []string{"Urgent tasks:"}
	for _, t := range tasks {
		lines = append(lines, "- "+t.Title+dueSuffix(t.Task))
	}
	return strings.Join(lines, "\n")
}

func topBlock(tasks []rankedTask) string {
	lines := []string{"Most important tasks:"}
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s%s", i+1, t.Title, dueSuffix(t.Task))
		if t.Category != nil && strings.TrimSpace(*t.Category) != "" {
			line += " [" + strings.TrimSpace(*t.Category) + "]"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func adviceBlock(hasUrgent bool) string {
	lines := []string{"Advice:"}
	if hasUrgent {
		lines = append(lines, "- Focus on urgent tasks first.")
	}
	lines = append(lines,
		"- Break large tasks into smaller, manageable steps.",
		"- Set aside dedicated time blocks to work through your list.",
	)
	return strings.Join(lines, "\n")
}

func dueSuffix(t model.Task) string {
	if t.DueDate == nil || strings.TrimSpace(*t.DueDate) == "" {
		return ""
	}
	return " (due " + strings.TrimSpace(*t.DueDate) + ")"
}
