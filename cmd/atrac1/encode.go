package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	atrac1 "github.com/mlassila/go-atrac1"
	"github.com/mlassila/go-atrac1/config"
	"github.com/mlassila/go-atrac1/container"
	"github.com/mlassila/go-atrac1/serialize"
	"github.com/mlassila/go-atrac1/stream"
	"github.com/mlassila/go-atrac1/wavio"
)

func runEncode(args []string, logger *log.Logger) int {
	fs := newFlagSet("encode")
	input := fs.StringP("input", "i", "", "input WAV file")
	output := fs.StringP("output", "o", "", "output AEA file")
	title := fs.StringP("title", "t", "", "AEA title (max 255 ASCII bytes)")
	cfgPath := fs.String("config", "", "optional YAML encoder config")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *input == "" || *output == "" {
		fs.Usage()
		return 1
	}

	opts := atrac1.DefaultEncoderOptions()
	if *cfgPath != "" {
		f, err := os.Open(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "atrac1: open config: %v\n", err)
			return 1
		}
		cfg, err := config.Load(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "atrac1: parse config: %v\n", err)
			return 2
		}
		opts, err = cfg.EncoderOptions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "atrac1: config: %v\n", err)
			return 2
		}
	}

	in, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: open input: %v\n", err)
		return 1
	}
	defer in.Close()

	channels, info, err := wavio.Read(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: decode wav: %v\n", err)
		return 2
	}
	logger.Debug("decoded wav", "channels", info.Channels, "sampleRate", info.SampleRate)

	perChannelFrames := make([][]atrac1.Frame, len(channels))
	for c, samples := range channels {
		full := (len(samples) / 512) * 512
		frames := wavio.ChunkFrames(samples[:full])
		tail := samples[full:]
		frames = append(frames, stream.FlushPadding(tail)...)
		perChannelFrames[c] = frames
	}

	var units []atrac1.SoundUnit
	for _, frames := range perChannelFrames {
		enc := atrac1.NewEncoder(opts)
		for _, f := range frames {
			ef := enc.EncodeFrame(f)
			units = append(units, serialize.SerializeFrame(&ef))
		}
	}
	// Interleave channel-major unit lists into the container's L,R,... order.
	if len(perChannelFrames) > 1 {
		units = interleaveUnits(units, len(perChannelFrames))
	}

	header, err := container.Create(*title, uint32(len(units)), uint8(len(channels)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: %v\n", err)
		return 2
	}

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: create output: %v\n", err)
		return 1
	}
	defer out.Close()

	w, err := container.NewWriter(out, header)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: write header: %v\n", err)
		return 1
	}
	for _, u := range units {
		if err := w.WriteUnit(u); err != nil {
			fmt.Fprintf(os.Stderr, "atrac1: write unit: %v\n", err)
			return 1
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: flush: %v\n", err)
		return 1
	}
	logger.Info("encoded", "units", len(units), "output", *output)
	return 0
}

// interleaveUnits reorders a channel-major sequence of nChannels equal-length
// runs into the container's unit-by-unit L,R,L,R,... order.
func interleaveUnits(units []atrac1.SoundUnit, nChannels int) []atrac1.SoundUnit {
	perChannel := len(units) / nChannels
	out := make([]atrac1.SoundUnit, 0, len(units))
	for i := 0; i < perChannel; i++ {
		for c := 0; c < nChannels; c++ {
			out = append(out, units[c*perChannel+i])
		}
	}
	return out
}
