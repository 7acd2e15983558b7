package repls

import (
	"github.com/jasonahills/monkey-interpreter/logs"
	"github.com/jasonahills/monkey-interpreter/monkeyconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs monkeyconfigs.Module
	Logs    logs.Module
}
