package main

import (
	"os"
	"path/filepath"

	"github.com/jasonahills/monkey-interpreter/cmds"
)

var files []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// ignore
			files = append(files, pattern)
		} else {
			for _, path := range paths {
				info, err := os.Stat(path)
				if err != nil {
					continue
				}
				if info.IsDir() {
					continue
				}
				files = append(files, path)
			}
		}
	}).Desc("scan matching files"))
}
