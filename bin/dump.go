package main

import (
	"encoding/json"
	"fmt"
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"
	humanize "github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/jovinson-ms/fo-dicom/dicomio"
	ntfs_parser "www.velocidex.com/golang/go-ntfs/parser"
)

var (
	dump_command = app.Command(
		"dump", "Carve one byte range out of an image stream.")

	dump_command_file_arg = dump_command.Arg(
		"file", "The image file to read",
	).Required().String()

	dump_command_offset = dump_command.Flag(
		"offset", "Start of the range within the stream").
		Required().Int64()

	dump_command_size = dump_command.Flag(
		"size", "Length of the range in bytes").
		Required().Int64()

	dump_command_out = dump_command.Flag(
		"out", "Write the range to this file instead of stdout").
		String()

	dump_command_mmap = dump_command.Flag(
		"mmap", "Map the image into memory instead of reading it").Bool()
)

// openSource opens path as a ByteSource. Plain reads go through a
// paged reader so repeated ranges over the same region hit its cache.
func openSource(path string, use_mmap bool) (dicomio.ByteSource, func(), error) {
	if use_mmap {
		source, err := dicomio.OpenMmapSource(path)
		if err != nil {
			return nil, nil, err
		}
		return source, func() { source.Close() }, nil
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	st, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, nil, err
	}

	reader, err := ntfs_parser.NewPagedReader(
		getReader(fd), 1024, 10000)
	if err != nil {
		fd.Close()
		return nil, nil, err
	}

	source := dicomio.NewReaderAtSourceCloser(
		reader, st.Size(), func() { fd.Close() })
	return source, func() { source.Close() }, nil
}

func doDump() {
	source, closer, err := openSource(
		*dump_command_file_arg, *dump_command_mmap)
	kingpin.FatalIfError(err, "Can not open image")
	defer closer()

	stats := &dicomio.SourceStats{}
	buffer := dicomio.NewRangeBuffer(
		dicomio.WithStats(source, stats),
		*dump_command_offset, *dump_command_size)

	data, err := buffer.Data()
	kingpin.FatalIfError(err, "Can not read range")

	if *dump_command_out != "" {
		err = os.WriteFile(*dump_command_out, data, 0644)
	} else {
		_, err = os.Stdout.Write(data)
	}
	kingpin.FatalIfError(err, "Can not write range")

	snapshot := stats.Snapshot()
	level.Debug(logger()).Log(
		"msg", "dumped range",
		"bytes", humanize.IBytes(uint64(len(data))),
		"reads", snapshot.Reads,
		"seeks", snapshot.Seeks)
}

func Dump(v interface{}) {
	serialized, _ := json.MarshalIndent(v, " ", " ")
	fmt.Printf(string(serialized))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case dump_command.FullCommand():
			doDump()
		default:
			return false
		}
		return true
	})
}
