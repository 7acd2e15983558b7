package monkeyconfigs

import (
	"github.com/jasonahills/monkey-interpreter/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
