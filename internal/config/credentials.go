package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	apierrors "github.com/diogo/termchat/internal/errors"
)

// Environment variables holding provider keys
const (
	OpenAIKeyEnv    = "OPENAI_API_KEY"
	AnthropicKeyEnv = "ANTHROPIC_API_KEY"
)

// Credentials are the provider API keys found in the environment
type Credentials struct {
	OpenAIKey    string
	AnthropicKey string
}

// HasOpenAI reports whether an OpenAI key is present
func (c Credentials) HasOpenAI() bool { return c.OpenAIKey != "" }

// HasAnthropic reports whether an Anthropic key is present
func (c Credentials) HasAnthropic() bool { return c.AnthropicKey != "" }

// LoadCredentials reads .env from the working directory and the config
// directory, then returns the keys from the environment. No key at all is
// ErrNoCredentials.
func LoadCredentials() (Credentials, error) {
	paths := []string{".env"}
	if dir, err := GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	for _, p := range paths {
		if err := LoadDotenv(p); err != nil {
			return Credentials{}, apierrors.NewConfigError(p, err)
		}
	}

	creds := Credentials{
		OpenAIKey:    strings.TrimSpace(os.Getenv(OpenAIKeyEnv)),
		AnthropicKey: strings.TrimSpace(os.Getenv(AnthropicKeyEnv)),
	}
	if !creds.HasOpenAI() && !creds.HasAnthropic() {
		return creds, apierrors.ErrNoCredentials
	}
	return creds, nil
}

// LoadDotenv reads a .env file and sets environment variables that are not already defined.
// Missing file is silently ignored.
func LoadDotenv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
