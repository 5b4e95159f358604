package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/render"
)

// clipboardWrite is replaced in tests
var clipboardWrite = clipboard.WriteAll

// RunTurn sends one chat turn. The user message is pushed before the request
// and stays in the transcript when the request fails. The assistant reply is
// pushed only when the provider returned one.
func RunTurn(ctx context.Context, env *Env, line string) error {
	interactive := env.Out == os.Stdout && render.IsStdoutTTY()

	env.Session.Push(models.NewMessage(models.RoleUser, line))
	snapshot := env.Session.Snapshot()
	shape := models.ChatShape(snapshot.Model, snapshot.Stream)

	if env.Config.MessageBoxes && !shape.Streams() && interactive {
		// replace the echoed input line with a boxed copy
		fmt.Fprint(env.Out, "\033[1A\033[2K")
		fmt.Fprintln(env.Out, render.Box(line, render.SpeakerUser, render.TerminalWidth()))
	}

	var (
		reply string
		ok    bool
		err   error
	)
	if shape.Streams() {
		fmt.Fprintln(env.Out)
		reply, err = env.Client.Stream(ctx, snapshot, env.Out)
		fmt.Fprint(env.Out, "\n\n")
		ok = reply != ""
	} else {
		reply, ok, err = env.Client.Complete(ctx, snapshot, shape)
	}
	if err != nil {
		return err
	}
	if !ok {
		printWarning(env.Err, "No reply received.")
		return nil
	}

	env.Session.Push(models.NewMessage(models.RoleAssistant, reply))

	if !shape.Streams() {
		printReply(env, reply)
	}

	if env.Config.CopyToClipboard {
		if err := clipboardWrite(reply); err != nil {
			printWarning(env.Err, "⚠ Failed to copy to clipboard: %v", err)
		} else {
			printInfo(env.Err, "Copied to clipboard")
		}
	}
	return nil
}

func printReply(env *Env, reply string) {
	width := render.TerminalWidth()

	text := reply
	if env.Config.PreviewMarkdown {
		mdWidth := width
		if env.Config.MessageBoxes {
			mdWidth = min(width, 100) * 80 / 100
		}
		text = render.MarkdownOrPlain(reply, render.OptionsFromConfig(env.Config.Markdown).WithWidth(mdWidth))
	}

	if env.Config.MessageBoxes {
		fmt.Fprintln(env.Out, render.Box(text, render.SpeakerAssistant, width))
		return
	}
	fmt.Fprintf(env.Out, "\n🤖 %s\n\n", text)
}
