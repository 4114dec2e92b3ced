package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	outDir := flag.String("out", "assets", "Directory the PNG files are written to.")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("mkdir: %v", err)
	}

	files := map[string]image.Image{
		"fish_bg.png": background(240, 240),
	}
	for name, body := range fishColors {
		files["fish_"+name+"_right.png"] = fish(body, false)
		files["fish_"+name+"_left.png"] = fish(body, true)
	}

	for name, img := range files {
		if err := writePNG(filepath.Join(*outDir, name), img); err != nil {
			fatalf("%s: %v", name, err)
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
