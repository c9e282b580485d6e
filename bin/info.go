package main

import (
	"fmt"

	kingpin "github.com/alecthomas/kingpin/v2"
	humanize "github.com/dustin/go-humanize"
	"github.com/jovinson-ms/fo-dicom/dicomio"
	"github.com/spf13/afero"
)

var (
	info_command = app.Command(
		"info", "Describe an image stream and its frame layout.")

	info_command_file_arg = info_command.Arg(
		"file", "The image file to inspect",
	).Required().String()

	info_command_offset = info_command.Flag(
		"offset", "Start of the pixel data within the stream").
		Default("0").Int64()

	info_command_frame_size = info_command.Flag(
		"frame-size", "Size of a single frame in bytes").
		Default("0").Int64()

	info_command_frames = info_command.Flag(
		"frames", "Number of frames in the stream").
		Default("0").Int()

	info_command_json = info_command.Flag(
		"json", "Print the report as JSON").Bool()
)

type InfoReport struct {
	Path      string             `json:"Path"`
	Size      int64              `json:"Size"`
	Readable  bool               `json:"Readable"`
	Fragments []dicomio.Fragment `json:"Fragments,omitempty"`
}

func doInfo() {
	source, err := dicomio.OpenFileSource(
		afero.NewOsFs(), *info_command_file_arg)
	kingpin.FatalIfError(err, "Can not open image")
	defer source.Close()

	fragments := dicomio.FrameFragments(
		*info_command_offset,
		*info_command_frame_size,
		*info_command_frames)

	if *info_command_json {
		Dump(InfoReport{
			Path:      source.Path(),
			Size:      source.Size(),
			Readable:  source.Readable(),
			Fragments: fragments,
		})
		return
	}

	fmt.Printf("%v: %v (%v bytes), readable %v\n",
		source.Path(), humanize.IBytes(uint64(source.Size())),
		source.Size(), source.Readable())

	if len(fragments) == 0 {
		return
	}

	fmt.Printf("%s", dicomio.FormatFragmentTable(fragments))

	last := fragments[len(fragments)-1]
	if last.Offset+last.Length > source.Size() {
		fmt.Printf("Warning: frame layout extends %v bytes past the end of the image\n",
			last.Offset+last.Length-source.Size())
	}
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case info_command.FullCommand():
			doInfo()
		default:
			return false
		}
		return true
	})
}
