package monkeyconfigs

import (
	"github.com/jasonahills/monkey-interpreter/cmds"
	"github.com/jasonahills/monkey-interpreter/configs"
	"github.com/jasonahills/monkey-interpreter/vars"
)

// Prompt is the string printed before each REPL read.
type Prompt string

var _ configs.Configurable = Prompt("")

func (p Prompt) ConfigExpr() string {
	return "Prompt"
}

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		vars.DerefOrZero(promptFlag),
		configs.First[string](loader, "prompt"),
		">> ",
	))
}
