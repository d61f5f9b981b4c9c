package main

import (
	"fmt"
	"os"

	"github.com/johns/sessmd/internal/archive"
	"github.com/johns/sessmd/internal/config"
	"github.com/johns/sessmd/internal/render"
	"github.com/johns/sessmd/internal/transcript"
	"github.com/johns/sessmd/internal/watch"
)

// sessmd-watch renders the report once, then re-renders to stdout each
// time the transcript changes. Same report, live.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: sessmd-watch <jsonl_file>")
		os.Exit(1)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}
	tools := cfg.ToolTable()

	err = watch.File(path, func() error {
		r, err := archive.Open(path)
		if err != nil {
			return err
		}
		defer r.Close()

		session, err := transcript.Parse(r, tools)
		if err != nil {
			return err
		}
		fmt.Println(render.Markdown(session, cfg.Report, tools))
		return nil
	})
	if err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "sessmd-watch: "+format+"\n", args...)
	os.Exit(1)
}
