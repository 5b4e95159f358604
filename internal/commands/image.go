package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/diogo/termchat/internal/api"
)

// Hyperlink wraps text in an OSC 8 terminal hyperlink to url
func Hyperlink(url, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
}

func runImage(ctx context.Context, env *Env, _ []string) error {
	choice, err := env.Prompter.Prompt("Choose model (2 for DALL-E 2, 3 for DALL-E 3): ")
	if err != nil {
		return err
	}

	var model string
	switch choice {
	case "2":
		model = api.ModelDallE2
	case "3":
		model = api.ModelDallE3
	default:
		fmt.Fprintln(env.Out, "Invalid choice. Defaulting to DALL-E 2.")
		model = api.ModelDallE2
	}

	prompt, err := env.Prompter.Prompt("Image Prompt: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(prompt) == "" {
		fmt.Fprint(env.Err, "\nImage prompt cannot be empty.\n\n")
		return nil
	}

	urls, err := env.Client.GenerateImage(ctx, model, prompt)
	if err != nil {
		return fmt.Errorf("image generation failed: %w", err)
	}

	fmt.Fprintln(env.Out)
	for i, url := range urls {
		fmt.Fprintln(env.Out, Hyperlink(url, fmt.Sprintf("Image %d Link", i+1)))
	}
	fmt.Fprintln(env.Out)
	return nil
}
