package main

import (
	"log/slog"
	"os"

	"pixview/modify"
	"pixview/parallel"

	"github.com/alecthomas/kong"
)

var cli struct {
	Workers int `help:"Number of parallel workers, 0 for one per CPU" default:"0"`

	Modify modify.CLICmd `cmd:"" help:"Batch process images: crop, scale, gray and fill through the pixel view pipeline"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("pixview"),
		kong.Description("Strided-view based batch image processor"),
		kong.UsageOnError(),
	)

	pool := parallel.Start(cli.Workers)

	var err error
	switch kctx.Command() {
	case "modify":
		err = cli.Modify.Run(pool.Do, pool.Wait)
	default:
		err = kctx.PrintUsage(false)
	}

	pool.Wait(true)

	if err != nil {
		slog.Error("run failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
