package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/diogo/termchat/internal/render"
)

// NewDefaultRegistry returns a registry holding every REPL command
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	for _, cmd := range []Command{
		NewCommand("clear", "Clears the conversation context.", runClear),
		NewCommand("debug", "Prints debug information.", runDebug),
		NewCommand("cm", "Changes the chat model.", runChangeModel),
		NewCommand("gf", "Adds file contents to the context. Usage: gf <path1> <path2> ...", runGetFiles),
		NewCommand("readme", "Generates a README file. Usage: readme <directory> [extensions...]", runReadme),
		NewCommand("doc", "Generates a report from the conversation.", runDocument),
		NewCommand("sc", "Saves the current conversation as JSON. Usage: sc [name]", runSaveConversation),
		NewCommand("lc", "Loads a conversation from the conversations directory. Usage: lc [name]", runLoadConversation),
		NewCommand("sh", "Executes a program with arguments. Usage: sh <program> [args...]", runShell),
		NewCommand("ec", "Edit the application configuration.", runEditConfig),
		NewCommand("dc", "Deletes the current application config file.", runDeleteConfig),
		NewCommand("image", "Generates an image and returns its URL.", runImage),
		NewCommand("stream", "Toggles streaming replies. Usage: stream [on|off]", runStream),
		NewCommand("quit", "Quits this program. Also 'q'.", runQuit),
	} {
		// names above are unique
		_ = r.Register(cmd)
	}

	_ = r.Register(NewCommand("help", "Displays this help message.", func(_ context.Context, env *Env, _ []string) error {
		r.PrintTable(env.Out)
		return nil
	}))

	return r
}

func runQuit(context.Context, *Env, []string) error {
	return ErrQuit
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, render.DimStyle.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, render.SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, render.WarningStyle.Render(fmt.Sprintf(format, args...)))
}
