package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mlassila/go-atrac1/container"
	"github.com/mlassila/go-atrac1/serialize"
)

type dumpFrame struct {
	Index            int     `json:"index"`
	NBFU             int     `json:"nBfu"`
	BlockModes       [3]int  `json:"blockModes"`
	ScaleFactorIndex []uint8 `json:"scaleFactorIndex"`
	WordLengthIndex  []int   `json:"wordLengthIndex"`
}

type dumpFile struct {
	Title        string      `json:"title"`
	ChannelCount uint8       `json:"channelCount"`
	FrameCount   uint32      `json:"frameCount"`
	Frames       []dumpFrame `json:"frames"`
}

func runDump(args []string, logger *log.Logger) int {
	fs := newFlagSet("dump")
	input := fs.StringP("input", "i", "", "input AEA file")
	output := fs.StringP("output", "o", "", "output JSON file")
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

	out := dumpFile{
		Title:        r.Header.Title,
		ChannelCount: r.Header.ChannelCount,
		FrameCount:   r.Header.FrameCount,
	}

	idx := 0
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
		df := dumpFrame{Index: idx, NBFU: ef.NBFU}
		for i, m := range ef.BlockModes {
			df.BlockModes[i] = int(m)
		}
		df.ScaleFactorIndex = append(df.ScaleFactorIndex, ef.ScaleFactorIndex[:ef.NBFU]...)
		for _, wl := range ef.WordLengthIndex[:ef.NBFU] {
			df.WordLengthIndex = append(df.WordLengthIndex, int(wl))
		}
		out.Frames = append(out.Frames, df)
		idx++
	}

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: create output: %v\n", err)
		return 1
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "atrac1: write json: %v\n", err)
		return 1
	}
	logger.Info("dumped", "frames", idx, "output", *output)
	return 0
}
