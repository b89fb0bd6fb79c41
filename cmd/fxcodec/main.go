// Command fxcodec is a small front-end over the fixed-point codec: it
// discovers files by extension in a directory, and runs one of a handful
// of modes against each.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/craigwl/fxcodec/lib/bitpack"
	"github.com/craigwl/fxcodec/lib/dataset"
	"github.com/craigwl/fxcodec/lib/rle"
)

func main() {
	var (
		dir  = flag.String("dir", "", "directory to scan for input files")
		ext  = flag.String("ext", ".dat", "file extension to match")
		mode = flag.String("mode", "stats", "one of: encode, decode, stats, rle")
		mag  = flag.Uint("mag", 7, "magnitude bits (M)")
		prec = flag.Uint("prec", 16, "precision bits (P)")
	)
	flag.Parse()
	if len(*dir) == 0 {
		fmt.Println("Error: ", "input directory required (-dir)")
		os.Exit(1)
	}

	files, err := dataset.Discover(*dir, *ext)
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("no files matched", *ext, "under", *dir)
		return
	}

	for _, path := range files {
		values, err := dataset.LoadFloats(path)
		if err != nil {
			fmt.Println("Error: ", err)
			os.Exit(1)
		}
		if err := run(*mode, path, values, uint8(*mag), uint8(*prec)); err != nil {
			fmt.Println("Error: ", err)
			os.Exit(1)
		}
	}
}

func run(mode, path string, values []float32, m, p uint8) error {
	switch mode {
	case "stats":
		min, max, mean := dataset.Stats(values)
		fmt.Printf("%s: n=%d min=%v max=%v mean=%v\n", path, len(values), min, max, mean)
	case "encode":
		buf, err := bitpack.EncodeBits(values, m, p)
		if err != nil {
			return err
		}
		fmt.Printf("%s: n=%d -> %d bytes (M=%d P=%d)\n", path, len(values), len(buf), m, p)
	case "decode":
		buf, err := bitpack.EncodeBits(values, m, p)
		if err != nil {
			return err
		}
		decoded, err := bitpack.DecodeBits(buf, m, p)
		if err != nil {
			return err
		}
		if len(decoded) == 0 {
			fmt.Printf("%s: decoded 0 values\n", path)
			return nil
		}
		fmt.Printf("%s: decoded %d values, first=%v\n", path, len(decoded), decoded[0])
	case "rle":
		entries := rle.Encode(values)
		fmt.Printf("%s: %d values -> %d runs\n", path, len(values), len(entries))
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	return nil
}
