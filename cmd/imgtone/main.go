// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/spf13/cobra"

	"github.com/ik5/imgtone"
	"github.com/ik5/imgtone/formats/raw"
	"github.com/ik5/imgtone/picture"
	"github.com/ik5/imgtone/render"
)

var version = "0.1.0"

var (
	flagRate     int
	flagTempo    int
	flagXOffset  int
	flagYOffset  int
	flagMaxNotes int
	flagKeys     int
	flagFormat   string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "imgtone",
	Short: "Play images as sound",
	Long: `imgtone converts still images into audio. Columns are time slices,
rows are piano keys (top row highest), and pixel color picks the
amplitude and the oscillator of each note:

  red   -> sine       green -> square
  blue  -> triangle   ties  -> sawtooth

Black pixels are silence.`,
	Version: version,
}

var convertCmd = &cobra.Command{
	Use:   "convert <image> <output>",
	Short: "Convert an image to an audio file",
	Long: `Convert an image to a mono 8-bit PCM audio file.

The output format is raw (headerless), wav or aiff, chosen with
--format or inferred from the output extension.

Examples:
  imgtone convert score.png score.pcm
  imgtone convert score.png score.wav --tempo 480
  imgtone convert photo.jpg out.aiff --max-notes 6 --verbose`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var playCmd = &cobra.Command{
	Use:   "play <image>",
	Short: "Render an image and play it on the default audio device",
	Long: `Render an image and play the result through the default audio
device without writing a file.

Example:
  imgtone play score.png --tempo 480`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	for _, cmd := range []*cobra.Command{convertCmd, playCmd} {
		cmd.Flags().IntVar(&flagRate, "rate", 48000, "output sample rate in Hz")
		cmd.Flags().IntVar(&flagTempo, "tempo", 240, "image columns consumed per minute of audio")
		cmd.Flags().IntVar(&flagXOffset, "x-offset", 0, "first image column to scan")
		cmd.Flags().IntVar(&flagYOffset, "y-offset", 0, "first image row to scan")
		cmd.Flags().IntVar(&flagMaxNotes, "max-notes", 12, "maximum simultaneous notes per column")
		cmd.Flags().IntVar(&flagKeys, "keys", 88, "number of pitch rows scanned per column")
		cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print conversion details")
	}
	convertCmd.Flags().StringVar(&flagFormat, "format", "",
		"output format: raw, wav or aiff (default: inferred from extension)")

	rootCmd.AddCommand(convertCmd, playCmd)
}

func params() render.Params {
	return render.Params{
		SampleRate:   flagRate,
		Tempo:        flagTempo,
		XOffset:      flagXOffset,
		YOffset:      flagYOffset,
		PolyphonyCap: flagMaxNotes,
		PitchRows:    flagKeys,
	}
}

// outputFormat resolves --format, falling back to the output file
// extension and finally to raw.
func outputFormat(outPath string) string {
	if flagFormat != "" {
		return flagFormat
	}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".wav":
		return "wav"
	case ".aiff", ".aif":
		return "aiff"
	default:
		return "raw"
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]
	p := params()

	if flagVerbose {
		tpc := float64(p.SamplesPerColumn()) / float64(p.SampleRate)
		fmt.Printf("converting %s to %s with sample rate of %dHz where each pixel is %fs long\n",
			inPath, outPath, p.SampleRate, tpc)
	}

	stats, err := imgtone.ConvertFile(inPath, outPath, outputFormat(outPath), p)
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Printf("wrote %d columns, %d notes", stats.Columns, stats.Notes)
		if n := len(stats.Overflows); n > 0 {
			fmt.Printf(", %d columns overflowed", n)
		}
		fmt.Println()
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := params()
	if err := p.Validate(); err != nil {
		return err
	}

	img, err := picture.DecodeFile(args[0])
	if err != nil {
		return err
	}

	// Render the whole stream up front; the raw sink writes the exact
	// signed bytes we would put in a file.
	var pcmBuf bytes.Buffer
	r := render.NewRenderer(p)
	r.Notices = os.Stderr

	stats, err := r.Render(img, raw.NewWriter(&pcmBuf))
	if err != nil {
		return err
	}

	if flagVerbose {
		duration := float64(stats.Columns*p.SamplesPerColumn()) / float64(p.SampleRate)
		fmt.Printf("playing %s: %d columns, %d notes, %.1fs\n",
			args[0], stats.Columns, stats.Notes, duration)
	}

	// The device consumes unsigned 8-bit; shift from signed to offset
	// binary in place.
	data := pcmBuf.Bytes()
	for i, b := range data {
		data[i] = b + 128
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   p.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
	})
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(bytes.NewReader(data))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}

	return player.Close()
}
