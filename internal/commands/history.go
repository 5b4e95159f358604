package commands

import (
	"context"
)

func runSaveConversation(_ context.Context, env *Env, args []string) error {
	name, err := nameArg(env, args, "Conversation name: ")
	if err != nil {
		return err
	}

	path, err := env.Store.Save(name, env.Session.Snapshot())
	if err != nil {
		return err
	}

	printSuccess(env.Out, "Conversation saved to %s", path)
	return nil
}

func runLoadConversation(_ context.Context, env *Env, args []string) error {
	name, err := nameArg(env, args, "\nProvide conversation name: ")
	if err != nil {
		return err
	}

	t, err := env.Store.Load(name)
	if err != nil {
		return err
	}

	env.Session.Replace(t)
	printSuccess(env.Out, "Loaded conversation '%s' (%s, %d messages)", name, t.Model, t.Len())
	return nil
}

// nameArg returns the first argument, or asks for a name when there is none
func nameArg(env *Env, args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return env.Prompter.Prompt(prompt)
}
