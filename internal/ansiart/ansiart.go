package ansiart

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Default preview size in terminal cells
const (
	DefaultWidth  = 40
	DefaultHeight = 32
)

// FromFile decodes the image at path and converts it to ANSI art
func FromFile(path string, width, height int) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img, width, height), nil
}

// Cached returns the ANSI art for imagePath, reusing a previous conversion
// of the same file stored under cacheDir/ansi_cache when one exists.
func Cached(cacheDir, imagePath string, width, height int) (string, error) {
	dir := filepath.Join(cacheDir, "ansi_cache")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	info, err := os.Stat(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}

	// A replaced image gets a new key through its size and mtime
	key := fmt.Sprintf("%s:%d:%d:%dx%d", imagePath, info.Size(), info.ModTime().UnixNano(), width, height)
	cachePath := filepath.Join(dir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	art, err := FromFile(imagePath, width, height)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to cache: %w", err)
	}

	return art, nil
}

// FromImage renders img as width x height cells of upper half blocks,
// each cell covering a 2x2 pixel square of the resized image.
func FromImage(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Top pixels as foreground, bottom pixels as background
			upper := averageColor(colorAt(resized, x, y), colorAt(resized, x+1, y))
			lower := averageColor(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))

			buffer.WriteString(cell('▀', toRGBA(upper), toRGBA(lower)))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the color at a coordinate, black when out of bounds
func colorAt(img image.Image, x, y int) colorful.Color {
	bounds := img.Bounds()
	var c color.Color = color.RGBA{A: 255}
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		c = img.At(x, y)
	}
	col, _ := colorful.MakeColor(c)
	return col
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// cell formats a character with truecolor foreground and background
func cell(char rune, fg, bg color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}

// VisibleWidth returns the printed width of s, ignoring ANSI escape sequences
func VisibleWidth(s string) int {
	return len([]rune(Strip(s)))
}

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
