package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/render"
)

const (
	reportDir     = "reports"
	fallbackTitle = "Report"
)

var titleReplacer = strings.NewReplacer("/", "_", `\`, "_", " ", "_", `"`, "")

// SanitizeTitle turns a generated title into a file name. Only the first
// non-empty line is used; slashes and spaces become underscores and double
// quotes are dropped.
func SanitizeTitle(title string) string {
	return titleReplacer.Replace(firstLine(title))
}

func firstLine(s string) string {
	for line := range strings.Lines(s) {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func runDocument(ctx context.Context, env *Env, _ []string) error {
	snapshot := env.Session.Snapshot()

	t := conversation.New(env.Config.DocumentModel, false)
	t.Push(models.NewMessage(models.RoleDeveloper, config.DocumentPrompt))
	for _, msg := range snapshot.Turns() {
		t.Push(msg)
	}

	report, ok, err := env.Client.Complete(ctx, t, models.OneShotShape(t.Model))
	if err != nil {
		return fmt.Errorf("report request failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("no content received in the document report: %w", apierrors.ErrNoContent)
	}

	title, ok, err := env.Client.Ask(ctx, env.Config.TitleModel, config.TitleRequest(report), "")
	if err != nil {
		return fmt.Errorf("title request failed: %w", err)
	}
	title = firstLine(title)
	if !ok || title == "" {
		title = fallbackTitle
	}

	filename := SanitizeTitle(title) + ".md"
	contents := fmt.Sprintf("%s\n\n%s", title, report)

	opts := render.OptionsFromConfig(env.Config.Markdown).WithWidth(render.TerminalWidth())
	fmt.Fprintf(env.Out, "\n%s\n", render.MarkdownOrPlain(contents, opts))

	display := filepath.Join(reportDir, filename)
	save, err := Confirm(env.Prompter, fmt.Sprintf("\nDo you want to save this document as '%s'? (y/n): ", display))
	if err != nil {
		return err
	}
	if !save {
		fmt.Fprint(env.Out, "Document not saved.\n\n")
		return nil
	}

	path, err := writeDocument(filepath.Join(env.OutputDir, reportDir), filename, contents)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "\nDocument saved as '%s'\n\n", path)
	return nil
}
