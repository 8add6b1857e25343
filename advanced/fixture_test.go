package advanced

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point lists. This is not a full
// (or even correct) svg parser. It takes the center of every circle, and
// scales the coordinates by the root element's width and height so that the
// points land in the unit square. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	width := parseFixtureFloat(name, rootEl.Attributes["width"])
	height := parseFixtureFloat(name, rootEl.Attributes["height"])

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x := parseFixtureFloat(name, circleEl.Attributes["cx"])
		y := parseFixtureFloat(name, circleEl.Attributes["cy"])
		points = append(points, Point{x / width, y / height})
	}
	return points
}

func parseFixtureFloat(name, s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q in fixture %q: %v", s, name, err)
	}
	return f
}
