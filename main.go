package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZacxDev/shotcut-preset-generator/pkg/presetgen"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shotcut-presets",
		Short: "Generate layout presets for the Shotcut video editor",
		Long: `shotcut-presets computes picture-in-picture, slide-in and grid layouts and
writes them as Shotcut filter presets (Crop: Rectangle, Size, Position & Rotate,
Mask: Simple Shape).

Examples:
  # Write every declared generator to ./shotcut/presets
  shotcut-presets generate

  # A 2x2 grid for a 1080p project, printed but not written
  shotcut-presets generate -g grid --set rows=2 --set columns=2 --canvas fhd --dry-run

  # Bordered crop picture-in-picture at 30%
  shotcut-presets generate -g pip --family crop --set size=30`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate presets",
		Long: fmt.Sprintf(`Generate presets for the declared generators.

Supported canvases:
%s
Preset families: crop, mask, spr (or the Shotcut directory names).`,
			formatSupportedCanvases()),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions(cmd)

			artifacts, err := presetgen.Run(opts)
			if opts.DryRun {
				for _, a := range artifacts {
					fmt.Printf("# %s/%s\n%s\n\n", a.Family, a.Name, a.Content)
				}
			}
			if err != nil {
				return err
			}
			fmt.Printf("%d presets generated\n", len(artifacts))
			return nil
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List declared generators and their inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			descriptions, err := presetgen.List(configPath)
			if err != nil {
				return err
			}
			for _, d := range descriptions {
				fmt.Print(d.String())
			}
			return nil
		},
	}

	ffmpegCmd = &cobra.Command{
		Use:   "ffmpeg-args",
		Short: "Print ffmpeg commands that preview each preset on a clip",
		Long: `Print one ffmpeg command per preset. Crop and mask presets cut their
rectangle out of the input clip; size and position presets scale the overlay
clip into the rectangle on top of the input. Nothing is executed.

Example:
  shotcut-presets ffmpeg-args -g pip --input screen.mp4 --overlay cam.mp4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions(cmd)
			input, _ := cmd.Flags().GetString("input")
			overlay, _ := cmd.Flags().GetString("overlay")
			outputDir, _ := cmd.Flags().GetString("preview-dir")
			format, _ := cmd.Flags().GetString("format")

			commands, err := presetgen.Preview(&presetgen.PreviewOptions{
				Options:   *opts,
				Input:     input,
				Overlay:   overlay,
				OutputDir: outputDir,
				Format:    format,
			})
			if err != nil {
				return err
			}
			for _, c := range commands {
				fmt.Println(c.String())
			}
			return nil
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Draw the preset rectangles of a generator into a PNG",
		Long: `Draw every preset rectangle of a run onto a scaled down frame and save it
as a PNG, one outline and label per preset.

Example:
  shotcut-presets render -g grid --set rows=2 --set columns=2 --image grid.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions(cmd)
			path, _ := cmd.Flags().GetString("image")
			scale, _ := cmd.Flags().GetFloat64("scale")

			artifacts, err := presetgen.Render(&presetgen.RenderOptions{
				Options: *opts,
				Path:    path,
				Scale:   scale,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%d presets drawn to %s\n", len(artifacts), path)
			return nil
		},
	}

	canvasesCmd = &cobra.Command{
		Use:   "canvases",
		Short: "List supported canvases",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(formatSupportedCanvases())
		},
	}
)

func formatSupportedCanvases() string {
	canvases := presetgen.GetSupportedCanvases()
	var sb strings.Builder
	for _, c := range canvases {
		sb.WriteString(fmt.Sprintf("- %s\n", c))
	}
	return sb.String()
}

func runOptions(cmd *cobra.Command) *presetgen.Options {
	opts := &presetgen.Options{}

	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.Generator, _ = cmd.Flags().GetString("generator")
	opts.Family, _ = cmd.Flags().GetString("family")
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.Canvas, _ = cmd.Flags().GetString("canvas")
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

	values, _ := cmd.Flags().GetStringToString("set")
	if len(values) > 0 {
		opts.Values = values
	}
	return opts
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("generator", "g", "", "Generator name (default: all declared generators)")
	cmd.Flags().String("family", "", "Preset family (crop, mask, spr)")
	cmd.Flags().String("canvas", "",
		fmt.Sprintf("Canvas overriding frame and padding (%s)", strings.Join(presetgen.GetSupportedCanvases(), ", ")))
	cmd.Flags().StringToString("set", nil, "Input value, e.g. --set size=30 (repeatable)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Presets file (default: ./presets.{json,yaml,toml})")

	// Generate command flags
	addRunFlags(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "Output root, presets go to <output>/presets/<family>")
	generateCmd.Flags().Bool("dry-run", false, "Print presets instead of writing them")

	// ffmpeg-args command flags
	addRunFlags(ffmpegCmd)
	ffmpegCmd.Flags().StringP("input", "i", "", "Input clip")
	ffmpegCmd.Flags().String("overlay", "", "Overlay clip for size and position presets")
	ffmpegCmd.Flags().String("preview-dir", "", "Directory for the rendered previews")
	ffmpegCmd.Flags().String("format", "mp4", "Preview container (mp4 or webm)")

	ffmpegCmd.MarkFlagRequired("input")

	// Render command flags
	addRunFlags(renderCmd)
	renderCmd.Flags().String("image", "layout.png", "PNG file to write")
	renderCmd.Flags().Float64("scale", 0.25, "Image size relative to the frame")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(ffmpegCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(canvasesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
