package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
)

func runEditConfig(_ context.Context, env *Env, _ []string) error {
	cfg, ok, err := env.TUI.RunInterview(*env.Config, modelChoices(env.Config))
	if err != nil {
		return err
	}
	if !ok {
		printInfo(env.Out, "Configuration unchanged.")
		return nil
	}

	*env.Config = cfg
	env.DevMessage = models.NewMessage(models.RoleDeveloper, cfg.DevMessage)
	_ = env.Session.Update(func(t *conversation.Transcript) error {
		t.SetDeveloper(cfg.DevMessage)
		t.Model = cfg.Model
		t.SetStream(cfg.EnableStreaming)
		return nil
	})

	path, err := config.SaveConfig(cfg)
	if err != nil {
		return fmt.Errorf("configuration applied but not saved: %w", err)
	}

	printSuccess(env.Out, "Configuration updated successfully! (%s)", path)
	return nil
}

func runDeleteConfig(_ context.Context, env *Env, _ []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if !config.Exists() {
		fmt.Fprintf(env.Out, "\nNo config file found at %s\n\n", path)
		return nil
	}

	confirmed, err := Confirm(env.Prompter, fmt.Sprintf("Are you sure you want to delete %s? (y/n): ", path))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintf(env.Out, "\nDid not delete: %s\n\n", path)
		return nil
	}

	if _, err := config.DeleteConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(env.Out, "\nNo config file found at %s\n\n", path)
			return nil
		}
		return err
	}
	fmt.Fprintf(env.Out, "\nDeleted %s\n\n", path)
	return nil
}
