package enrich

import (
	"strconv"
	"strings"

	"github.com/ewblake/soiree/internal/domain"
)

// NotesPlaceholder substitutes for an empty notes cell in prompts.
const NotesPlaceholder = "No additional notes"

// TemplateClassic is the user-prompt template used with the
// category/item/notes template shape.
const TemplateClassic = `We are planning a {{event_type}} called "{{event_name}}" on {{event_date}} for {{attendee_count}} guests, with a budget of {{budget_range}}.

Current planning task ({{category}}): {{item}}
This task should be completed {{weeks_before}} weeks before the event.
Notes so far: {{notes}}

Expand this task into specific, actionable guidance for this event.`

// TemplateTaskList is the user-prompt template used with the Task/Deadline
// template shape.
const TemplateTaskList = `We are planning a {{event_type}} called "{{event_name}}" on {{event_date}} for {{attendee_count}} guests, with a budget of {{budget_range}}.

Current task ({{category}}): {{task}}
Deadline: {{weeks_before}} weeks before the event.
Existing resources: {{existing_resources}}

Write specific, actionable guidance for completing this task for this event.`

// BuildPrompt fills a prompt template with named substitutions drawn from
// the event context and one planning item. Unknown placeholders pass
// through untouched.
func BuildPrompt(tmpl string, event domain.EventContext, item domain.EnrichedItem) string {
	notes := item.Notes
	if strings.TrimSpace(notes) == "" {
		notes = NotesPlaceholder
	}

	r := strings.NewReplacer(
		"{{event_name}}", event.Name,
		"{{event_date}}", event.Date.Format("January 2, 2006"),
		"{{attendee_count}}", strconv.Itoa(event.AttendeeCount),
		"{{budget_range}}", event.BudgetRange,
		"{{event_type}}", event.EventType,
		"{{category}}", item.Category,
		"{{item}}", item.Description,
		"{{task}}", item.Description,
		"{{weeks_before}}", formatWeeks(item.WeeksBefore),
		"{{deadline_date}}", item.DeadlineDate.Format("2006-01-02"),
		"{{notes}}", notes,
		"{{existing_resources}}", notes,
	)
	return r.Replace(tmpl)
}

func formatWeeks(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
