// Package pointio reads and writes point lists for the command line tools.
//
// The text format is one point per line as two whitespace separated numbers,
// "x y". Blank lines and lines starting with # are ignored. SVG input takes the
// center of every circle element.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/advanced"
)

func ReadText(in io.Reader) ([]advanced.Point, error) {
	points := []advanced.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Write points in the format ReadText accepts. The output round trips exactly.
func WriteText(out io.Writer, points []advanced.Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		fmt.Fprintf(w, "%s %s\n",
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		)
	}
	return errors.Wrap(w.Flush(), "writing points")
}

// Read circle centers from an SVG document. Coordinates are taken as they are;
// transforms and viewBox are ignored. SVG y points down, so pass flip to mirror
// the points vertically within the root element's height.
func ReadSVG(in io.Reader, flip bool) ([]advanced.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	height := 0.0
	if flip {
		height, err = parseAttribute(root, "height")
		if err != nil {
			return nil, err
		}
	}

	circles := root.FindAll("circle")
	points := make([]advanced.Point, 0, len(circles))
	for _, circle := range circles {
		x, err := parseAttribute(circle, "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseAttribute(circle, "cy")
		if err != nil {
			return nil, err
		}
		if flip {
			y = height - y
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}

func parseAttribute(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok {
		return 0, errors.Errorf("<%s> has no %s attribute", el.Name, name)
	}
	// Lengths like "100px" are common on the root element
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "<%s> attribute %s", el.Name, name)
	}
	return f, nil
}
