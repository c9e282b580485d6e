package main

import (
	"io"
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type CommandHandler func(command string) bool

var (
	app = kingpin.New("dcmio",
		"A tool for carving byte ranges out of image streams.")

	verbose_flag = app.Flag(
		"verbose", "Show verbose information").Bool()

	command_handlers []CommandHandler
)

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	for _, command_handler := range command_handlers {
		if command_handler(command) {
			break
		}
	}
}

func logger() log.Logger {
	res := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if *verbose_flag {
		return level.NewFilter(res, level.AllowDebug())
	}
	return level.NewFilter(res, level.AllowInfo())
}

func getReader(reader io.ReaderAt) io.ReaderAt {
	return reader
}
