package render

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatPNG      Format = "png"
	FormatSVG      Format = "svg"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatTerminal Format = "term"
)

var Formats = []Format{FormatPNG, FormatSVG, FormatHTML, FormatPDF, FormatTerminal}

var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, known := range Formats {
		if format == known {
			return format, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// File extension for the format, including the dot.
func (format Format) Ext() string {
	if format == FormatTerminal {
		return ".png"
	}
	return "." + string(format)
}

func Write(format Format, w io.Writer, f Frame, o Options) error {
	switch format {
	case FormatPNG:
		return PNG(w, f, o)
	case FormatSVG:
		return SVG(w, f, o)
	case FormatHTML:
		return HTML(w, f, o)
	case FormatPDF:
		return PDF(w, f, o)
	case FormatTerminal:
		return Terminal(w, f, o)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}
