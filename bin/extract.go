package main

import (
	"fmt"
	"os"
	"path/filepath"

	kingpin "github.com/alecthomas/kingpin/v2"
	humanize "github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/jovinson-ms/fo-dicom/dicomio"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

var (
	extract_command = app.Command(
		"extract", "Extract every frame of an image stream into files.")

	extract_command_file_arg = extract_command.Arg(
		"file", "The image file to read",
	).Required().String()

	extract_command_offset = extract_command.Flag(
		"offset", "Start of the pixel data within the stream").
		Default("0").Int64()

	extract_command_frame_size = extract_command.Flag(
		"frame-size", "Size of a single frame in bytes").
		Required().Int64()

	extract_command_frames = extract_command.Flag(
		"frames", "Number of frames in the stream").
		Required().Int()

	extract_command_out_dir = extract_command.Flag(
		"out-dir", "Directory to write frames into").
		Default(".").String()

	extract_command_jobs = extract_command.Flag(
		"jobs", "Number of frames to extract in parallel").
		Default("4").Int()
)

// workerLimit clamps the --jobs flag to a usable errgroup limit. A
// limit of zero blocks every worker forever, so non-positive values
// run serially.
func workerLimit(jobs int) int {
	if jobs < 1 {
		return 1
	}
	return jobs
}

func doExtract() {
	fragments := dicomio.FrameFragments(
		*extract_command_offset,
		*extract_command_frame_size,
		*extract_command_frames)

	fs := afero.NewOsFs()
	stats := &dicomio.SourceStats{}

	g := new(errgroup.Group)
	g.SetLimit(workerLimit(*extract_command_jobs))

	for i, frag := range fragments {
		// Capture per-iteration copies for the closure: this module
		// builds under pre-go1.22 loop variable semantics.
		i, frag := i, frag
		g.Go(func() error {
			// Sources carry a cursor so every worker opens its
			// own. Only the stats sink is shared.
			source, err := dicomio.OpenFileSource(
				fs, *extract_command_file_arg)
			if err != nil {
				return errors.Wrapf(err, "frame %v", i)
			}
			defer source.Close()

			buffer := dicomio.NewRangeBuffer(
				dicomio.WithStats(source, stats),
				frag.Offset, frag.Length)

			data, err := buffer.Data()
			if err != nil {
				return errors.Wrapf(err, "frame %v", i)
			}

			out_path := filepath.Join(*extract_command_out_dir,
				fmt.Sprintf("frame-%04d.bin", i))
			return errors.Wrapf(
				os.WriteFile(out_path, data, 0644), "frame %v", i)
		})
	}
	kingpin.FatalIfError(g.Wait(), "Can not extract frames")

	snapshot := stats.Snapshot()
	level.Info(logger()).Log(
		"msg", "extracted frames",
		"frames", len(fragments),
		"bytes", humanize.IBytes(uint64(snapshot.BytesRead)),
		"reads", snapshot.Reads)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case extract_command.FullCommand():
			doExtract()
		default:
			return false
		}
		return true
	})
}
