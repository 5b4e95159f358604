package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/render"
)

const readmeDir = "readmes"

// FileMessage formats a file as a user message: path, separator, content
func FileMessage(path, content string) models.Message {
	return models.NewMessage(models.RoleUser, fmt.Sprintf("%s\n\n:::\n\n%s", path, content))
}

func runGetFiles(_ context.Context, env *Env, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(env.Err, "\nInvalid use of gf. Usage: gf <path1> <path2> ...\n\n")
		return nil
	}

	for _, arg := range args {
		path := strings.TrimSpace(arg)
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(env.Err, "Error reading %s: %v\n\n", path, err)
			continue
		}
		env.Session.Push(FileMessage(path, string(data)))
		printSuccess(env.Out, "Added: %s", path)
	}
	return nil
}

// SourceFile is a file collected for README generation
type SourceFile struct {
	Path    string
	Content string
}

// SkippedFile is a file CollectFiles could not use
type SkippedFile struct {
	Path string
	Err  error
}

// errNotText marks files whose content is not valid UTF-8
var errNotText = errors.New("not a UTF-8 text file")

// CollectFiles walks root and returns readable text files in walk order,
// plus the files that matched but could not be read. Hidden files and
// directories are skipped, as is anything whose name or root-relative path
// matches one of the exclude patterns. When extensions is non-empty only files
// with one of those extensions (without dot) are kept. Symlinks to regular
// files are followed; symlinked directories are not.
func CollectFiles(root string, extensions []string, exclude []string) ([]SourceFile, []SkippedFile, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.TrimPrefix(ext, ".")] = true
	}

	var (
		files   []SourceFile
		skipped []SkippedFile
	)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if path == root {
			return err
		}
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if strings.HasPrefix(d.Name(), ".") || excluded(exclude, d.Name(), filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if len(wanted) > 0 && !wanted[strings.TrimPrefix(filepath.Ext(path), ".")] {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				skipped = append(skipped, SkippedFile{Path: path, Err: err})
				return nil
			}
			if !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err == nil && !utf8.Valid(data) {
			err = errNotText
		}
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Err: err})
			return nil
		}
		files = append(files, SourceFile{Path: path, Content: string(data)})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, skipped, nil
}

func excluded(patterns []string, name, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func runReadme(ctx context.Context, env *Env, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(env.Err, "\nInvalid use of readme. Usage: readme <directory> [extensions...]\n\n")
		return nil
	}

	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		fmt.Fprintf(env.Err, "\nDirectory '%s' not found.\n\n", dir)
		return nil
	}

	files, skipped, err := CollectFiles(dir, args[1:], env.Config.ReadmeExclude)
	if err != nil {
		return err
	}
	for _, skip := range skipped {
		fmt.Fprintf(env.Err, "Error reading %s: %v\n\n", skip.Path, skip.Err)
	}

	t := conversation.New(env.Config.DocumentModel, false)
	t.Push(models.NewMessage(models.RoleDeveloper, config.ReadmePrompt))
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Path)
		t.Push(FileMessage(f.Path, f.Content))
	}
	fmt.Fprintf(env.Out, "\nFiles used: %v\n\n", names)

	readme, ok, err := env.Client.Complete(ctx, t, models.OneShotShape(t.Model))
	if err != nil {
		return fmt.Errorf("readme request failed: %w", err)
	}
	if !ok {
		fmt.Fprintln(env.Err, "No content received from readme command.")
		return nil
	}
	readme = strings.ReplaceAll(readme, "â€¢", "-")

	fmt.Fprintln(env.Out, render.MarkdownOrPlain(readme, render.OptionsFromConfig(env.Config.Markdown).WithWidth(render.TerminalWidth())))

	name, err := env.Prompter.Prompt("\nEnter the README file name to save (without extension): ")
	if err != nil {
		return err
	}
	name = SanitizeTitle(name)
	if name == "" {
		fmt.Fprintln(env.Err, "Invalid filename. Document not saved.")
		return nil
	}

	save, err := Confirm(env.Prompter, fmt.Sprintf("\nDo you want to save this document as '%s.md'? (y/n): ", name))
	if err != nil {
		return err
	}
	if !save {
		fmt.Fprint(env.Out, "Document not saved.\n\n")
		return nil
	}

	path, err := writeDocument(filepath.Join(env.OutputDir, readmeDir), name+".md", readme)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "\nDocument saved to '%s'\n\n", path)
	return nil
}

func writeDocument(dir, filename, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
