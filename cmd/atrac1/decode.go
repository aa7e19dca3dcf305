package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	atrac1 "github.com/mlassila/go-atrac1"
	"github.com/mlassila/go-atrac1/container"
	"github.com/mlassila/go-atrac1/serialize"
	"github.com/mlassila/go-atrac1/stream"
	"github.com/mlassila/go-atrac1/wavio"
)

func runDecode(args []string, logger *log.Logger) int {
	fs := newFlagSet("decode")
	input := fs.StringP("input", "i", "", "input AEA file")
	output := fs.StringP("output", "o", "", "output WAV file")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *input == "" || *output == "" {
		fs.Usage()
		return 1
	}

	in, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: open input: %v\n", err)
		return 1
	}
	defer in.Close()

	r, err := container.NewReader(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: read header: %v\n", err)
		return 2
	}
	nChannels := int(r.Header.ChannelCount)
	if nChannels == 0 {
		nChannels = 1
	}
	logger.Debug("decoding aea", "title", r.Header.Title, "channels", nChannels, "frameCount", r.Header.FrameCount)

	decoders := make([]*atrac1.Decoder, nChannels)
	delays := make([]*stream.DelayCompensation, nChannels)
	channels := make([][]float32, nChannels)
	for c := range decoders {
		decoders[c] = atrac1.NewDecoder(atrac1.DefaultDecoderOptions())
		delays[c] = stream.NewDelayCompensation()
	}

	c := 0
	for {
		unit, err := r.ReadUnit()
		if err != nil {
			if err == io.EOF {
				break
			}
			fmt.Fprintf(os.Stderr, "atrac1: read unit: %v\n", err)
			return 2
		}
		ef, err := serialize.DeserializeFrame(unit[:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "atrac1: deserialize: %v\n", err)
			return 2
		}
		pcm := decoders[c].DecodeFrame(ef)
		for _, out := range delays[c].Push(pcm) {
			channels[c] = append(channels[c], out[:]...)
		}
		c = (c + 1) % nChannels
	}
	for i, d := range delays {
		if last, n := d.Flush(); n > 0 {
			channels[i] = append(channels[i], last[:n]...)
		}
	}

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: create output: %v\n", err)
		return 1
	}
	defer out.Close()

	if err := wavio.Write(out, channels, 44100, 16); err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: encode wav: %v\n", err)
		return 1
	}
	logger.Info("decoded", "output", *output)
	return 0
}
