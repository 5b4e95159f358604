package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/tui"
)

const (
	commandPrefix = ":"
	inputPrompt   = "🗣️ "
)

// ParseCommand splits a command line (without the leading colon) into the
// command name, whitespace-separated arguments and the raw argument text.
func ParseCommand(line string) (name string, args []string, raw string) {
	line = strings.TrimSpace(line)
	name, raw = line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, raw = line[:i], strings.TrimSpace(line[i:])
	}
	return name, strings.Fields(raw), raw
}

// HandleLine processes one line of input and reports whether the loop should end.
// Errors are reported on env.Err and never end the loop.
func HandleLine(ctx context.Context, env *Env, registry *Registry, line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	// Ctrl+C cancels the work started by this line, not the program
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	rest, isCommand := strings.CutPrefix(line, commandPrefix)
	if !isCommand {
		if err := RunTurn(ctx, env, line); err != nil {
			fmt.Fprintln(env.Err, tui.FormatError(err, "Request failed"))
		}
		return false
	}

	name, args, raw := ParseCommand(rest)
	if name == "q" {
		return true
	}

	cmd, ok := registry.Get(name)
	if !ok {
		fmt.Fprintf(env.Err, "\nUnknown command: %s\n", name)
		if suggestion, ok := registry.Suggest(name); ok {
			fmt.Fprintf(env.Err, "Did you mean %s?\n\n", suggestion)
		}
		return false
	}

	env.RawArgs = raw
	err := cmd.Execute(ctx, env, args)
	env.RawArgs = ""

	if errors.Is(err, ErrQuit) {
		return true
	}
	if err != nil {
		fmt.Fprintln(env.Err, tui.FormatError(err, "Error executing command: "+name))
	}
	return false
}

// REPL reads lines with history and completion and dispatches them
type REPL struct {
	env         *Env
	registry    *Registry
	line        *liner.State
	historyFile string
}

// NewREPL creates a REPL and loads the persisted input history
func NewREPL(env *Env, registry *Registry) *REPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	r := &REPL{env: env, registry: registry, line: line}
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetWordCompleter(r.complete)

	if path, err := config.GetHistoryPath(); err == nil {
		r.historyFile = path
		r.loadHistory()
	}

	env.Prompter = NewLinePrompter(line)
	return r
}

func (r *REPL) loadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		_, _ = r.line.ReadHistory(f)
		f.Close()
	}
}

func (r *REPL) saveHistory() {
	if r.historyFile == "" {
		return
	}
	if _, err := config.EnsureConfigDir(); err != nil {
		return
	}

	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = r.line.WriteHistory(f)
}

// Close saves history and restores the terminal
func (r *REPL) Close() error {
	r.saveHistory()
	return r.line.Close()
}

// Run reads lines until :q, :quit or end of input.
// Ctrl+C at the prompt discards the current line.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprint(r.env.Out, "\n-- terminal chat -- \n\n")

	for {
		input, err := r.line.Prompt(inputPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.env.Out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		r.line.AppendHistory(input)

		if HandleLine(ctx, r.env, r.registry, input) {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// complete is a liner word completer; pos counts runes
func (r *REPL) complete(line string, pos int) (string, []string, string) {
	runes := []rune(line)
	pos = min(max(pos, 0), len(runes))
	head, tail := string(runes[:pos]), string(runes[pos:])

	start := strings.LastIndexAny(head, " \t") + 1
	prefix, word := head[:start], head[start:]

	// command name
	if start == 0 && strings.HasPrefix(word, commandPrefix) {
		var out []string
		for _, name := range r.registry.Names() {
			if strings.HasPrefix(name, word[len(commandPrefix):]) {
				out = append(out, commandPrefix+name+" ")
			}
		}
		return prefix, out, tail
	}

	if name, _, _ := ParseCommand(strings.TrimPrefix(head, commandPrefix)); start > 0 && strings.HasPrefix(head, commandPrefix) && name == "lc" {
		names, _ := r.env.Store.List()
		var out []string
		for _, name := range names {
			if strings.HasPrefix(name, word) {
				out = append(out, name)
			}
		}
		return prefix, out, tail
	}

	return prefix, CompletePath(word), tail
}

// CompletePath returns the file system entries starting with word.
// Directories get a trailing separator.
func CompletePath(word string) []string {
	matches, err := filepath.Glob(globEscape(word) + "*")
	if err != nil {
		return nil
	}

	segment := word[strings.LastIndexAny(word, `/\`)+1:]
	showHidden := strings.HasPrefix(segment, ".")

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !showHidden && strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			m += string(filepath.Separator)
		}
		out = append(out, m)
	}
	return out
}

func globEscape(s string) string {
	return strings.NewReplacer(`*`, `\*`, `?`, `\?`, `[`, `\[`).Replace(s)
}
