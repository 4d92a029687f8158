// canvastext renders wrapped, styled text into a PNG image.
//
// Basic usage:
//
//	canvastext -width 400 -height 200 -out banner.png "Buy Our Stuff! $49.95!"
//
// Style properties are read from a TOML file passed with -config; the
// fonts named there must be registered with -font family=path pairs.
// Without any -font flag the Go Regular typeface is registered as
// "sans-serif".
package main

import "flag"
import "fmt"
import "image"
import "image/draw"
import "image/png"
import "io"
import "log"
import "os"
import "strings"

import "github.com/BurntSushi/toml"
import "golang.org/x/image/font/gofont/goregular"

import canvastext "github.com/d4lton/CanvasText"
import "github.com/d4lton/CanvasText/imgcanvas"

const helpIntro = "canvastext - render wrapped, styled text to a PNG\n\n"

var (
	// Flags
	output     = flag.String("out", "out.png", "Output PNG path, or - for stdout")
	input      = flag.String("in", "", "Read the text from this file instead of the arguments, - for stdin")
	width      = flag.Int("width", 400, "Image width in pixels")
	height     = flag.Int("height", 200, "Image height in pixels")
	configPath = flag.String("config", "", "Style configuration in TOML format")
	fontFlags  = flag.String("font", "", "Comma separated family=path font registrations")
	background = flag.String("bg", "", "Background color (hex), transparent if empty")
	lineHeight = flag.Float64("lineheight", canvastext.DefaultLineHeight, "Default line height multiplier")
)

// styleConfig mirrors canvastext.Style with TOML-friendly string fields
// for the enumerated properties.
type styleConfig struct {
	Align         string
	VertAlign     string
	Padding       float64
	PaddingLeft   *float64
	PaddingRight  *float64
	PaddingTop    *float64
	PaddingBottom *float64
	Font          string
	FontSize      float64
	FontFamily    string
	Color         string
	Alpha         *float64
	LineHeight    float64
	ShadowColor   string
	ShadowBlur    float64
	ShadowOffset  *float64
	ShadowOffsetX *float64
	ShadowOffsetY *float64
	Decoration    string
}

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpIntro)
		flag.PrintDefaults()
	}
	flag.Parse()

	text, err := readText()
	if err != nil { log.Fatalf("Failed to read the input text: %v", err) }

	style, err := readStyle(*configPath)
	if err != nil { log.Fatalf("Failed to read the style configuration: %v", err) }

	library, err := registerFonts(*fontFlags)
	if err != nil { log.Fatalf("Failed to register fonts: %v", err) }

	surface := imgcanvas.NewImage(*width, *height, library)
	if *background != "" {
		bg, ok := canvastext.ParseColor(*background)
		if !ok { log.Fatalf("Invalid background color %q", *background) }
		rgba := surface.RGBA()
		draw.Draw(rgba, rgba.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	renderer := canvastext.NewRenderer()
	renderer.SetLineHeight(*lineHeight)
	area, err := renderer.Draw(surface, text, style)
	if err != nil { log.Fatalf("Failed to render the text: %v", err) }
	log.Printf("Rendered %d chars covering %.1f square pixels", len(text), area)

	if err := writePNG(*output, surface.RGBA()); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
}

func readText() (string, error) {
	if *input == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	if *input != "" {
		data, err := os.ReadFile(*input)
		return string(data), err
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	return strings.Join(flag.Args(), " "), nil
}

func readStyle(path string) (*canvastext.Style, error) {
	config := styleConfig{}
	if path != "" {
		_, err := toml.DecodeFile(path, &config)
		if err != nil { return nil, err }
	}

	align, err := parseAlign(config.Align)
	if err != nil { return nil, err }
	vertAlign, err := parseVertAlign(config.VertAlign)
	if err != nil { return nil, err }
	decoration, err := parseDecoration(config.Decoration)
	if err != nil { return nil, err }

	return &canvastext.Style{
		Align: align,
		VertAlign: vertAlign,
		Padding: config.Padding,
		PaddingLeft: config.PaddingLeft,
		PaddingRight: config.PaddingRight,
		PaddingTop: config.PaddingTop,
		PaddingBottom: config.PaddingBottom,
		Font: config.Font,
		FontSize: config.FontSize,
		FontFamily: config.FontFamily,
		Color: config.Color,
		Alpha: config.Alpha,
		LineHeight: config.LineHeight,
		ShadowColor: config.ShadowColor,
		ShadowBlur: config.ShadowBlur,
		ShadowOffset: config.ShadowOffset,
		ShadowOffsetX: config.ShadowOffsetX,
		ShadowOffsetY: config.ShadowOffsetY,
		Decoration: decoration,
	}, nil
}

func parseAlign(value string) (canvastext.Align, error) {
	switch strings.ToLower(value) {
	case "", "left" : return canvastext.Left, nil
	case "center"   : return canvastext.Center, nil
	case "right"    : return canvastext.Right, nil
	default:
		return canvastext.Left, fmt.Errorf("unknown align %q", value)
	}
}

func parseVertAlign(value string) (canvastext.VertAlign, error) {
	switch strings.ToLower(value) {
	case "", "top" : return canvastext.Top, nil
	case "middle"  : return canvastext.Middle, nil
	case "bottom"  : return canvastext.Bottom, nil
	default:
		return canvastext.Top, fmt.Errorf("unknown vertAlign %q", value)
	}
}

func parseDecoration(value string) (canvastext.Decoration, error) {
	switch strings.ToLower(value) {
	case "", "none"      : return canvastext.DecorationNone, nil
	case "underline"     : return canvastext.Underline, nil
	case "strikethrough" : return canvastext.Strikethrough, nil
	default:
		return canvastext.DecorationNone, fmt.Errorf("unknown decoration %q", value)
	}
}

func registerFonts(registrations string) (*imgcanvas.FontLibrary, error) {
	library := imgcanvas.NewFontLibrary()
	if registrations == "" {
		err := library.Register("sans-serif", goregular.TTF)
		return library, err
	}
	for _, entry := range strings.Split(registrations, ",") {
		family, path, found := strings.Cut(entry, "=")
		if !found { return nil, fmt.Errorf("malformed font registration %q, expected family=path", entry) }
		data, err := os.ReadFile(path)
		if err != nil { return nil, err }
		err = library.Register(family, data)
		if err != nil { return nil, fmt.Errorf("registering %q: %w", family, err) }
	}
	return library, nil
}

func writePNG(path string, img image.Image) error {
	if path == "-" { return png.Encode(os.Stdout, img) }
	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, img)
	closeErr := file.Close()
	if err != nil { return err }
	return closeErr
}
