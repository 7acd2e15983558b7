package repls

import (
	"context"
	"os"

	"github.com/chzyer/readline"
	"github.com/jasonahills/monkey-interpreter/logs"
	"github.com/jasonahills/monkey-interpreter/monkeyconfigs"
	"github.com/jasonahills/monkey-interpreter/monkeylang"
)

// Run reads lines, scans each one and prints the resulting tokens, until
// Ctrl-C or Ctrl-D.
type Run func(ctx context.Context) error

func (Module) Run(
	prompt monkeyconfigs.Prompt,
	historyPath monkeyconfigs.HistoryPath,
	newSpan logs.NewSpan,
	logger logs.Logger,
	printTokens PrintTokens,
) Run {
	return func(ctx context.Context) error {
		ctx, _ = newSpan(ctx, "")

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyPath),
		})
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				break
			}
			if line == "" {
				continue
			}
			logger.DebugContext(ctx, "scan line",
				"len", len(line),
			)
			if err := printTokens(
				os.Stdout,
				monkeylang.NewTokenizer(line),
			); err != nil {
				return logs.WrapSpan(ctx, err)
			}
		}

		logger.InfoContext(ctx, "repl end")
		return nil
	}
}
