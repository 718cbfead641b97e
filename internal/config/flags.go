package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-media-publisher/models"
)

// Flags holds the command-line arguments of the uploader.
type Flags struct {
	// ConfigPath is the -c / -config value; empty when not given.
	ConfigPath string
	// JSONLogs switches log output from console to JSON lines.
	JSONLogs bool
	// ImagePath is the first positional argument.
	ImagePath string
}

// ParseFlags parses the uploader command line.
//
// Flags:
//
//	-c/-config yaml config file path
//	-json      emit JSON log lines instead of console output
//
// The single positional argument is the image path. Returns
// [ErrMissingImagePath] when it is absent; usage is written to output on
// any error.
func ParseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	var f Flags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "c", "", "YAML config file path")
	fs.StringVar(&f.ConfigPath, "config", "", "YAML config file path (alias)")
	fs.BoolVar(&f.JSONLogs, "json", false, "Emit JSON log lines")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [-c config.yaml] <image-path>\n", name)
		fmt.Fprintf(fs.Output(), "Example: %s image.jpg\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.ImagePath = strings.TrimSpace(fs.Arg(0))
	if f.ImagePath == "" {
		fs.Usage()
		return nil, ErrMissingImagePath
	}

	return &f, nil
}

// DocFlags holds the command-line arguments of doclinks.
type DocFlags struct {
	// OutputPath is the -o value.
	OutputPath string
	// LinkURL is the -url value.
	LinkURL string
	// Title is the -title value.
	Title string
}

// ParseDocFlags parses the doclinks command line.
//
// Flags:
//
//	-o     output .docx path (default test_docx_links.docx)
//	-url   link target
//	-title document title
func ParseDocFlags(name string, args []string, output io.Writer) (*DocFlags, error) {
	var f DocFlags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.OutputPath, "o", models.DefaultDocumentPath, "Output .docx path")
	fs.StringVar(&f.LinkURL, "url", models.DefaultLinkURL, "Link target URL")
	fs.StringVar(&f.Title, "title", "", "Document title")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.OutputPath = strings.TrimSpace(f.OutputPath)
	f.LinkURL = strings.TrimSpace(f.LinkURL)
	f.Title = strings.TrimSpace(f.Title)

	return &f, nil
}
