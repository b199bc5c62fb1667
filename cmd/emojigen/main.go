// Command emojigen builds an emoji font pack from a directory of PNG images.
//
// It assigns each emoji a private-use codepoint, stacks the resized glyphs
// into out/emoji.png, and writes the font-provider descriptor (emoji.json)
// and the name-to-codepoint mapping (fedimoji.json) beside it. Pass a
// previous run's fedimoji.json via -import to keep codepoints stable.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fedimoji/emojigen"
)

func main() {
	var (
		emojiDir   = flag.String("emoji-dir", "./emoji", "directory containing emoji images")
		outputDir  = flag.String("output-dir", "./out", "output directory")
		importPath = flag.String("import", "", "existing fedimoji.json to import codepoints from")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	emojigen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	var opts []emojigen.Option
	if *importPath != "" {
		opts = append(opts, emojigen.WithImportPath(*importPath))
	}

	if _, err := emojigen.Generate(*emojiDir, *outputDir, opts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
