package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ewblake/soiree/internal/cli/formatter"
	"github.com/ewblake/soiree/internal/deadline"
	"github.com/ewblake/soiree/internal/domain"
	"github.com/ewblake/soiree/internal/enrich"
	"github.com/ewblake/soiree/internal/export"
	"github.com/ewblake/soiree/internal/importer"
	"github.com/ewblake/soiree/internal/repository"
	"github.com/ewblake/soiree/internal/views"
)

type generateFlags struct {
	eventName string
	eventDate string
	attendees int
	budget    string
	eventType string

	schema  string
	outPath string
	limit   int
	pauseMs int
}

func newGenerateCmd(app *App) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate <template>",
		Short: "Enrich a planning template and write the event workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.eventName, "event", "", "event name")
	cmd.Flags().StringVar(&flags.eventDate, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&flags.attendees, "attendees", 0, "expected attendee count")
	cmd.Flags().StringVar(&flags.budget, "budget", "", "budget range, e.g. \"$10,000-$15,000\"")
	cmd.Flags().StringVar(&flags.eventType, "type", "", "event type, e.g. fundraiser")
	cmd.Flags().StringVar(&flags.schema, "schema", "classic", "template schema (classic or tasklist)")
	cmd.Flags().StringVar(&flags.outPath, "out", "", "output workbook path (default derived from event name)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "enrich at most N rows (0 = all)")
	cmd.Flags().IntVar(&flags.pauseMs, "pause", 500, "pause between completion calls, in milliseconds")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *App, templatePath string, flags generateFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	contract, err := importer.ContractByName(flags.schema)
	if err != nil {
		return err
	}

	event, err := resolveEvent(app, flags)
	if err != nil {
		return err
	}
	// Fatal before any network activity.
	if err := event.Validate(); err != nil {
		return err
	}

	tbl, err := importer.Load(templatePath)
	if err != nil {
		return err
	}
	items, err := importer.Validate(tbl, contract, app.Logger)
	if err != nil {
		return err
	}

	// Pre-slicing is the only mechanism to bound total work: once the
	// batch starts it runs over every row it was given.
	if flags.limit > 0 && flags.limit < len(items) {
		items = items[:flags.limit]
	}

	now := app.now()
	enriched := deadline.Resolve(items, event.Date, now)

	template := enrich.TemplateClassic
	if contract.Name == importer.ContractTaskList.Name {
		template = enrich.TemplateTaskList
	}
	orch := enrich.NewOrchestrator(app.Client, enrich.Options{
		SystemPrompt:   app.LLMConfig.SystemPrompt,
		PromptTemplate: template,
		Pacer:          enrich.NewFixedPacer(time.Duration(flags.pauseMs) * time.Millisecond),
	})

	fmt.Fprintf(out, "Enriching %d planning items for %s...\n",
		len(enriched), formatter.StyleBold.Render(event.Name))

	startedAt := app.now()
	enriched = orch.Enrich(ctx, enriched, event, func(i, total int) {
		label := enriched[i].Description
		if enriched[i].Category != "" {
			label = enriched[i].Category + ": " + label
		}
		fmt.Fprintf(out, "\r\033[K%s", formatter.RenderBatchProgress(i, total, label, 20))
	})
	fmt.Fprint(out, "\r\033[K")

	failed := 0
	for _, it := range enriched {
		if strings.HasPrefix(it.Expansion, "[generation failed") {
			failed++
		}
	}

	bundle := views.Project(enriched, event, app.now())

	outPath := flags.outPath
	if outPath == "" {
		outPath = slugify(event.Name) + "-plan.xlsx"
	}
	writer := export.NewWriter(export.DefaultStyle())
	if err := writer.Write(outPath, bundle); err != nil {
		return err
	}

	if app.Runs != nil {
		run := repository.Run{
			ID:          uuid.NewString(),
			EventName:   event.Name,
			EventDate:   event.Date,
			EventType:   event.EventType,
			ItemCount:   len(enriched),
			FailedCount: failed,
			OutputPath:  outPath,
			StartedAt:   startedAt,
			FinishedAt:  app.now(),
		}
		if err := app.Runs.Record(ctx, run); err != nil {
			// History is best-effort; the workbook is already on disk.
			app.logger().Warn("failed to record generation run", "error", err)
		}
	}

	fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("Workbook written:"), outPath)
	high := 0
	for _, it := range enriched {
		if it.EffectivePriority() == domain.PriorityHigh {
			high++
		}
	}
	if high > 0 {
		fmt.Fprintf(out, "%s %d items are due within 30 days.\n",
			formatter.PriorityStyle(domain.PriorityHigh).Render("Heads up:"), high)
	}
	if failed > 0 {
		fmt.Fprintf(out, "%s %d of %d items carry an inline error marker; rerun to retry them.\n",
			formatter.StyleYellow.Render("Note:"), failed, len(enriched))
	}
	return nil
}

// resolveEvent builds the event context from flags, falling back to the
// interactive wizard for missing fields when stdin is a terminal.
func resolveEvent(app *App, flags generateFlags) (domain.EventContext, error) {
	answers := eventAnswers{
		Name:      flags.eventName,
		Date:      flags.eventDate,
		Budget:    flags.budget,
		EventType: flags.eventType,
	}
	if flags.attendees > 0 {
		answers.Attendees = strconv.Itoa(flags.attendees)
	}

	missing := answers.Name == "" || answers.Date == "" || answers.Attendees == "" ||
		answers.Budget == "" || answers.EventType == ""
	if missing && app.IsInteractive != nil && app.IsInteractive() {
		if err := eventForm(&answers).Run(); err != nil {
			return domain.EventContext{}, fmt.Errorf("collecting event details: %w", err)
		}
	}

	var event domain.EventContext
	event.Name = strings.TrimSpace(answers.Name)
	event.BudgetRange = strings.TrimSpace(answers.Budget)
	event.EventType = strings.TrimSpace(answers.EventType)
	if answers.Date != "" {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(answers.Date))
		if err != nil {
			return domain.EventContext{}, fmt.Errorf("parsing event date: %w", err)
		}
		event.Date = d
	}
	if answers.Attendees != "" {
		n, err := strconv.Atoi(strings.TrimSpace(answers.Attendees))
		if err != nil {
			return domain.EventContext{}, fmt.Errorf("parsing attendee count: %w", err)
		}
		event.AttendeeCount = n
	}
	return event, nil
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "event"
	}
	return slug
}
