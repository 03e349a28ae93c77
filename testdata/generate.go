// This program generates a sample dataset for manual testing: logo source
// assets for every required color plus a few hand-curated usecase pairs
// above the pattern range.
//
//go:build ignore

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	dir := filepath.Join("testdata", "dataset", "doge")
	os.MkdirAll(dir, 0755)

	// Logo sources: a ring mark on a transparent canvas per color.
	generateLogo(filepath.Join(dir, "logo-white.png"), color.NRGBA{240, 240, 240, 255})
	generateLogo(filepath.Join(dir, "logo-black.png"), color.NRGBA{20, 20, 20, 255})
	generateLogo(filepath.Join(dir, "logo-gray.png"), color.NRGBA{128, 128, 128, 255})

	// Usecase pairs above the 45-image pattern range.
	for num := 57; num <= 62; num++ {
		generateUsecase(dir, num)
	}

	// A non-artifact file the tools must leave alone.
	os.WriteFile(filepath.Join(dir, "notes.md"), []byte("curated by hand\n"), 0644)
}

func generateLogo(path string, c color.NRGBA) {
	const size = 256
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cx, cy := size/2, size/2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d < 100*100 && d > 60*60 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	savePNG(path, img)
}

func generateUsecase(dir string, num int) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	shade := uint8(num * 4)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{shade, 90, 200 - shade, 255})
		}
	}
	name := filepath.Join(dir, fmt.Sprintf("%04d", num))
	savePNG(name+".png", img)
	os.WriteFile(name+".txt", []byte("doom_doge logo on a product mockup.\n"), 0644)
}

func savePNG(path string, img image.Image) {
	f, _ := os.Create(path)
	defer f.Close()
	png.Encode(f, img)
}
