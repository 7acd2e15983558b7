package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jasonahills/monkey-interpreter/monkeylang"
)

func main() {

	var input io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()
		input = f
	}

	content, err := io.ReadAll(input)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	tokenizer := monkeylang.NewTokenizer(string(content))
	for token := range tokenizer.All {
		fmt.Println(token)
	}

}
