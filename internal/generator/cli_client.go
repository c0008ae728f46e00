package generator

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CLIClient runs a local claude binary in print mode. The user prompt goes in
// on stdin and the reply is read from stdout. Token usage is not reported.
type CLIClient struct {
	cliPath string
}

func NewCLIClient(cliPath string) *CLIClient {
	return &CLIClient{cliPath: cliPath}
}

func (c *CLIClient) args(systemPrompt string) []string {
	return []string{
		"--print",
		"--output-format", "text",
		"--system-prompt", systemPrompt,
		"--max-turns", "1",
	}
}

func (c *CLIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, c.cliPath, c.args(systemPrompt)...)
	cmd.Stdin = strings.NewReader(userPrompt)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("run %s: %w: %s", c.cliPath, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("run %s: %w", c.cliPath, err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil, ErrEmptyReply
	}
	return &LLMResponse{Content: text}, nil
}
