// Package commands provides the termchat CLI: the cobra root command, the
// interactive loop and its colon commands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/termchat/internal/api"
	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/render"
	"github.com/diogo/termchat/internal/tui"
)

const modelListTimeout = 15 * time.Second

var (
	// Global flags
	modelFlag   string
	verboseFlag bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "termchat",
	Short: "Terminal chat client for OpenAI and Anthropic models",
	Long: `termchat is an interactive chat client for the OpenAI and Anthropic APIs.

Type a message to chat. Lines starting with ':' are commands, ':help' lists
them and ':q' quits. API keys are read from OPENAI_API_KEY and
ANTHROPIC_API_KEY, or from a .env file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "termchat %s (built %s)\n", Version, BuildTime)
			return nil
		}
		return runChat(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err, "termchat"))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gpt-4o)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log requests to stderr")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		printHelp(cmd.OutOrStdout(), cmd)
	})
}

func printHelp(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintf(w, "\nUsage:\n  %s [flags]\n", cmd.Use)
	fmt.Fprintf(w, "\nFlags:\n%s", cmd.Flags().FlagUsages())
	NewDefaultRegistry().PrintTable(w)
}

// newLogger returns the diagnostics logger: warnings only unless verbose
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runChat(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return fmt.Errorf("%w: set %s or %s", err, config.OpenAIKeyEnv, config.AnthropicKeyEnv)
	}

	firstRun := !config.Exists()
	cfg, err := config.LoadConfig()
	logger := newLogger(os.Stderr, verboseFlag || cfg.Verbose)
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("using default configuration", "error", err)
	}

	cfg.OpenAIEnabled = cfg.OpenAIEnabled && creds.HasOpenAI()
	cfg.AnthropicEnabled = cfg.AnthropicEnabled && creds.HasAnthropic()
	if !cfg.OpenAIEnabled && !cfg.AnthropicEnabled {
		return fmt.Errorf("no enabled provider has an API key")
	}

	spinner := render.NewSpinner(os.Stderr, "Thinking", render.IsStderrTTY())
	client, err := api.NewClient(
		api.WithOpenAIKey(creds.OpenAIKey),
		api.WithAnthropicKey(creds.AnthropicKey),
		api.WithIndicator(spinner),
		api.WithTimeout(cfg.Timeout()),
		api.WithMaxTokens(cfg.MaxTokens),
		api.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	cfg.AllModels = models.AllModelNames(cfg.OpenAIEnabled, cfg.AnthropicEnabled, anthropicModels(ctx, client, cfg, logger))

	if firstRun && render.IsStdoutTTY() {
		cfg.Normalize(cfg.AllModels)
		if edited, ok, err := tui.RunInterview(cfg, cfg.AllModels); err != nil {
			logger.Warn("configuration interview failed", "error", err)
		} else if ok {
			cfg = edited
			if _, err := config.SaveConfig(cfg); err != nil {
				logger.Warn("could not save configuration", "error", err)
			}
		}
	}

	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	requested := cfg.Model
	if cfg.Normalize(cfg.AllModels) {
		logger.Warn("model is not available, using default", "model", requested, "default", cfg.Model)
	}

	transcript := conversation.New(cfg.Model, cfg.EnableStreaming)
	dev := models.NewMessage(models.RoleDeveloper, cfg.DevMessage)
	transcript.Push(dev)

	env := NewEnv(conversation.NewSession(transcript), dev, &cfg, client)
	repl := NewREPL(env, NewDefaultRegistry())
	defer repl.Close()

	return repl.Run(ctx)
}

func anthropicModels(ctx context.Context, client *api.Client, cfg config.Config, logger *slog.Logger) []string {
	if !cfg.AnthropicEnabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, modelListTimeout)
	defer cancel()

	names, err := client.ListModels(ctx)
	if err != nil || len(names) == 0 {
		logger.Warn("could not list Anthropic models, using built-in list", "error", err)
		return models.FallbackAnthropicModels()
	}
	return names
}
