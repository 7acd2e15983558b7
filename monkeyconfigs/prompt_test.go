package monkeyconfigs

import (
	"testing"

	"github.com/jasonahills/monkey-interpreter/cmds"
	"github.com/jasonahills/monkey-interpreter/modes"
	"github.com/reusee/dscope"
)

func TestPromptDefault(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		prompt Prompt,
	) {
		if prompt != ">> " {
			t.Fatalf("got %q", prompt)
		}
	})
}

func TestPromptFlag(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-prompt", "monkey> ",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"-prompt.",
	})
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		prompt Prompt,
	) {
		if prompt != "monkey> " {
			t.Fatalf("got %q", prompt)
		}
	})
}

func TestHistoryPathInTest(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		path HistoryPath,
	) {
		if path != "" {
			t.Fatalf("got %q", path)
		}
	})
}
