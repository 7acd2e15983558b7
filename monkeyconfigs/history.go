package monkeyconfigs

import (
	"os"
	"path/filepath"

	"github.com/jasonahills/monkey-interpreter/configs"
	"github.com/jasonahills/monkey-interpreter/modes"
	"github.com/jasonahills/monkey-interpreter/vars"
)

// HistoryPath is where the REPL persists line history. Empty disables
// persistence.
type HistoryPath string

var _ configs.Configurable = HistoryPath("")

func (p HistoryPath) ConfigExpr() string {
	return "HistoryPath"
}

func (Module) HistoryPath(
	mode modes.Mode,
	loader configs.Loader,
) HistoryPath {

	// tests never touch user files
	if mode == modes.ModeDevelopment {
		return ""
	}

	var fallback string
	if configDir, err := os.UserConfigDir(); err == nil {
		fallback = filepath.Join(configDir, "monkey_history")
	}

	return HistoryPath(vars.FirstNonZero(
		configs.First[string](loader, "history_path"),
		fallback,
	))
}
