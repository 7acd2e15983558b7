package main

import (
	"github.com/jasonahills/monkey-interpreter/debugs"
	"github.com/jasonahills/monkey-interpreter/repls"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Repls  repls.Module
	Debugs debugs.Module
}
