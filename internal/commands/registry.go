package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrNilCommand is returned when registering a nil command
	ErrNilCommand = errors.New("command cannot be nil")

	// ErrDuplicateCommand is returned when a name is registered twice
	ErrDuplicateCommand = errors.New("command already registered")

	// ErrQuit is returned by a command to end the loop
	ErrQuit = errors.New("quit requested")
)

// Command is a REPL command invoked as ":<name> [args...]"
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, env *Env, args []string) error
}

// HandlerFunc is the signature of a command body
type HandlerFunc func(ctx context.Context, env *Env, args []string) error

type funcCommand struct {
	name        string
	description string
	run         HandlerFunc
}

func (c *funcCommand) Name() string        { return c.name }
func (c *funcCommand) Description() string { return c.description }

func (c *funcCommand) Execute(ctx context.Context, env *Env, args []string) error {
	return c.run(ctx, env, args)
}

// NewCommand wraps a handler function as a Command
func NewCommand(name, description string, run HandlerFunc) Command {
	return &funcCommand{name: name, description: description, run: run}
}

// Registry maps command names to commands.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. Nil commands, empty names and duplicates are rejected.
func (r *Registry) Register(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("cannot register command with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.commands[name] = cmd
	return nil
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Has reports whether a command is registered under name
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns all commands sorted by name
func (r *Registry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Names returns all command names sorted
func (r *Registry) Names() []string {
	cmds := r.List()
	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name()
	}
	return names
}

// Suggest returns the registered name closest to name by edit distance.
// Ties go to the name that sorts first. ok is false on an empty registry.
func (r *Registry) Suggest(name string) (string, bool) {
	best, bestDistance := "", -1
	for _, candidate := range r.Names() {
		d := levenshteinDistance(name, candidate)
		if bestDistance == -1 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, bestDistance >= 0
}

// PrintTable writes the command table used by :help and --help
func (r *Registry) PrintTable(w io.Writer) {
	const nameWidth = 7

	fmt.Fprint(w, "\nAvailable commands:\n\n")
	for _, cmd := range r.List() {
		if len(cmd.Name()) < nameWidth {
			fmt.Fprintf(w, "%-7s - %s\n", cmd.Name(), cmd.Description())
			continue
		}
		fmt.Fprintln(w, cmd.Name())
		fmt.Fprintf(w, "%s - %s\n", strings.Repeat(" ", nameWidth), cmd.Description())
	}
	fmt.Fprintln(w)
}

// levenshteinDistance returns the minimum number of single-character
// insertions, deletions or substitutions turning s1 into s2.
func levenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
