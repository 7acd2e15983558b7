package main

import (
	"context"
	"io"
	"os"

	"github.com/jasonahills/monkey-interpreter/cmds"
	"github.com/jasonahills/monkey-interpreter/debugs"
	"github.com/jasonahills/monkey-interpreter/logs"
	"github.com/jasonahills/monkey-interpreter/modes"
	"github.com/jasonahills/monkey-interpreter/monkeylang"
	"github.com/jasonahills/monkey-interpreter/repls"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var tapTokens = cmds.Switch("-tap")

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		printTokens repls.PrintTokens,
		run repls.Run,
		tap debugs.Tap,
	) {

		var sources []string
		for _, filePath := range files {
			content, err := os.ReadFile(filePath)
			ce(err)
			sources = append(sources, string(content))
			logger.Info("file",
				"path", filePath,
			)
		}

		if stdin := getStdinContent(); len(stdin) > 0 {
			sources = append(sources, string(stdin))
		}

		// no input, go interactive
		if len(sources) == 0 {
			ce(run(ctx))
			return
		}

		for _, source := range sources {
			tokens, err := monkeylang.Collect(monkeylang.NewTokenizer(source))
			ce(err)
			logger.InfoContext(ctx, "scanned",
				"tokens", len(tokens),
			)
			if *tapTokens {
				tap(ctx, "tokens", map[string]any{
					"source": source,
					"tokens": tokens,
				})
			}
			ce(printTokens(os.Stdout, monkeylang.NewSliceTokenStream(tokens)))
		}

	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
