package generator

import (
	"strings"

	"todo-summary-assistant/internal/model"
)

const promptInstructions = `In your summary:
1. Start with the total number of pending tasks
2. Identify any urgent tasks
3. List 3-5 tasks that need the most immediate attention
4. Provide brief, actionable advice on how to approach these tasks

Keep your response concise and direct.`

// BuildPrompt renders pending tasks into the summarization prompt.
func BuildPrompt(tasks []model.Task) string {
	var b strings.Builder
	b.WriteString("I have the following pending tasks. Please provide a concise summary of my tasks, prioritizing by urgency and due date where available:\n\n")

	for _, t := range tasks {
		b.WriteString("- ")
		b.WriteString(t.Title)
		if t.DueDate != nil && *t.DueDate != "" {
			b.WriteString(" (due: " + *t.DueDate + ")")
		}
		if t.Category != nil && *t.Category != "" {
			b.WriteString(" [" + *t.Category + "]")
		}
		b.WriteString(": ")
		if t.Description != nil && *t.Description != "" {
			b.WriteString(*t.Description)
		} else {
			b.WriteString("No description")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptInstructions)
	return b.String()
}
