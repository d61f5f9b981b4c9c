package main

import (
	"fmt"
	"os"

	"github.com/johns/sessmd/internal/archive"
	"github.com/johns/sessmd/internal/config"
	"github.com/johns/sessmd/internal/render"
	"github.com/johns/sessmd/internal/transcript"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: sessmd <jsonl_file>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	r, err := archive.Open(os.Args[1])
	if err != nil {
		fatal("%v", err)
	}
	defer r.Close()

	tools := cfg.ToolTable()
	session, err := transcript.Parse(r, tools)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println(render.Markdown(session, cfg.Report, tools))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "sessmd: "+format+"\n", args...)
	os.Exit(1)
}
