package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintf(os.Stderr, "usage: %s [command | flag] ...\n", os.Args[0])
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, depth int) {
	names := slices.Sorted(maps.Keys(commands))
	seen := make(map[*Command]bool)
	for _, name := range names {
		command := commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true
		display := name
		if len(command.Aliases) > 0 {
			display += " | " + strings.Join(command.Aliases, " | ")
		}
		fmt.Fprintf(os.Stderr, "%s%s\n",
			strings.Repeat("  ", depth),
			display,
		)
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "%s%s\n",
				strings.Repeat("  ", depth+1),
				command.Description,
			)
		}
		if len(command.Subs) > 0 {
			printCommands(command.Subs, depth+1)
		}
	}
}
