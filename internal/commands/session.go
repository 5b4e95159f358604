package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/render"
)

func runClear(_ context.Context, env *Env, _ []string) error {
	env.Session.Reset(env.DevMessage)
	fmt.Fprint(env.Out, render.ClearScreen())
	fmt.Fprint(env.Out, "\nConversation cleared.\n\n")
	return nil
}

func runDebug(_ context.Context, env *Env, _ []string) error {
	env.Session.View(func(t *conversation.Transcript) {
		fmt.Fprintf(env.Out, "\nCurrent model: %s\n", t.Model)
		fmt.Fprintf(env.Out, "Streaming: %t\n", t.Stream)
		fmt.Fprint(env.Out, "\nCurrent context messages:\n\n")
		for _, msg := range t.Input {
			fmt.Fprintf(env.Out, "%s:\n%s\n:::\n\n", msg.Role, msg.Content)
		}
	})
	return nil
}

// modelChoices lists the models offered by the picker
func modelChoices(cfg *config.Config) []string {
	if len(cfg.AllModels) > 0 {
		return cfg.AllModels
	}
	return models.AllModelNames(cfg.OpenAIEnabled, cfg.AnthropicEnabled, models.FallbackAnthropicModels())
}

func runChangeModel(_ context.Context, env *Env, _ []string) error {
	choices := modelChoices(env.Config)

	printInfo(env.Out, "Current model: %s\n", env.Session.Model())

	var sb strings.Builder
	sb.WriteString("Available models:\n")
	for i, name := range choices {
		fmt.Fprintf(&sb, "%d) %s\n", i+1, name)
	}
	printInfo(env.Out, "%s", sb.String())

	answer, err := env.Prompter.Prompt("\nPlease select a model by entering its number: ")
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(choices) {
		fmt.Fprintf(env.Err, "Invalid selection. Keeping current model: %s\n\n", env.Session.Model())
		return nil
	}

	model := choices[n-1]
	env.Session.SetModel(model)
	env.Config.Model = model
	if _, err := config.SaveConfig(*env.Config); err != nil {
		return fmt.Errorf("model changed for this session but not saved: %w", err)
	}

	printSuccess(env.Out, "Model changed to: %s", model)
	return nil
}

func runStream(_ context.Context, env *Env, args []string) error {
	enabled := !env.Session.Stream()
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			enabled = true
		case "off", "false", "0":
			enabled = false
		default:
			fmt.Fprint(env.Err, "\nUsage: stream [on|off]\n\n")
			return nil
		}
	}

	env.Session.SetStream(enabled)
	if enabled {
		printSuccess(env.Out, "Streaming enabled")
		if model := env.Session.Model(); !models.ChatShape(model, true).Streams() {
			printWarning(env.Out, "%s does not stream; its replies stay buffered", model)
		}
	} else {
		printSuccess(env.Out, "Streaming disabled")
	}
	return nil
}
