// Package ffmpeg turns computed preset rectangles into ffmpeg command lines
// so a layout can be previewed on a real clip outside Shotcut. Nothing here
// runs ffmpeg.
package ffmpeg

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type CodecSettings struct {
	VideoCodec    string
	AudioCodec    string
	DefaultCRF    int
	FileExtension string
}

var codecPresets = map[string]CodecSettings{
	"webm": {
		VideoCodec:    "libvpx-vp9",
		AudioCodec:    "libopus",
		DefaultCRF:    15,
		FileExtension: ".webm",
	},
	"mp4": {
		VideoCodec:    "libx264",
		AudioCodec:    "aac",
		DefaultCRF:    18,
		FileExtension: ".mp4",
	},
}

func GetCodecSettings(outputFormat string) CodecSettings {
	if settings, ok := codecPresets[outputFormat]; ok {
		return settings
	}
	// Default to mp4 if format not specified or invalid
	return codecPresets["mp4"]
}

// Command is one ffmpeg invocation, without the leading "ffmpeg"
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return "ffmpeg " + strings.Join(c.Args, " ")
}

// Builder creates preview commands. Crop and mask presets cut the region out
// of Input; size and position presets scale Overlay into the region on top of
// Input.
type Builder struct {
	Input     string
	Overlay   string
	OutputDir string
	Format    string
}

// Build returns the preview command for one preset
func (b Builder) Build(name string, family types.PresetFamily, rect geometry.Rectangle) (Command, error) {
	if b.Input == "" {
		return Command{}, errors.New("no input clip given")
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return Command{}, errors.Errorf("preset %s: empty rectangle %s", name, rect)
	}

	codec := GetCodecSettings(b.Format)
	output := filepath.Join(b.OutputDir, EnsureExtension(SanitizeFilename(name), codec.FileExtension))

	var stream *ffmpeg.Stream
	switch family {
	case types.PresetFamilyCropRectangle, types.PresetFamilyMaskSimpleShape:
		stream = CropFilter(ffmpeg.Input(b.Input), rect)
	case types.PresetFamilySizePositionRotate:
		if b.Overlay == "" {
			return Command{}, errors.Errorf("preset %s: %s needs an overlay clip", name, family.DisplayName())
		}
		main := ffmpeg.Input(b.Input)
		overlay := ScaleFilter(ffmpeg.Input(b.Overlay), rect)
		stream = CreateOverlayFilter(main, overlay, strconv.Itoa(rect.X), strconv.Itoa(rect.Y))
	default:
		return Command{}, errors.Errorf("preset %s: no preview for preset family %s", name, family)
	}

	args := stream.Output(output, ffmpeg.KwArgs{
		"c:v": codec.VideoCodec,
		"crf": codec.DefaultCRF,
	}).OverWriteOutput().GetArgs()

	return Command{Name: name, Args: args}, nil
}

// CropFilter cuts rect out of the stream
func CropFilter(stream *ffmpeg.Stream, rect geometry.Rectangle) *ffmpeg.Stream {
	return stream.Filter("crop", ffmpeg.Args{
		strconv.Itoa(rect.Width),
		strconv.Itoa(rect.Height),
		strconv.Itoa(rect.X),
		strconv.Itoa(rect.Y),
	})
}

// ScaleFilter resizes the stream to the size of rect
func ScaleFilter(stream *ffmpeg.Stream, rect geometry.Rectangle) *ffmpeg.Stream {
	return stream.Filter("scale", ffmpeg.Args{
		strconv.Itoa(rect.Width),
		strconv.Itoa(rect.Height),
	})
}

// CreateOverlayFilter creates a filter for overlaying one video on top of another
func CreateOverlayFilter(main, overlay *ffmpeg.Stream, x, y string) *ffmpeg.Stream {
	return ffmpeg.Filter([]*ffmpeg.Stream{main, overlay}, "overlay", ffmpeg.Args{
		fmt.Sprintf("x=%s", x),
		fmt.Sprintf("y=%s", y),
	})
}

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9-_.]`)
	underscores = regexp.MustCompile(`_+`)
)

// SanitizeFilename maps a preset name to something every shell and
// filesystem accepts, e.g. Grid_2x2_(1,1.1x1) -> Grid_2x2_1_1.1x1
func SanitizeFilename(name string) string {
	s := unsafeChars.ReplaceAllString(name, "_")
	s = underscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// EnsureExtension replaces any known video extension with extension
func EnsureExtension(filename, extension string) string {
	extensions := []string{".mp4", ".webm", ".mkv", ".avi", ".mov"}
	for _, ext := range extensions {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename + extension
}
