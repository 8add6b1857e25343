package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/render"
)

// Writes numbered frames into dir. Recording is a no-op without a dir.
type frameRecorder struct {
	dir     string
	format  render.Format
	options render.Options
	count   int
}

func (r *frameRecorder) record(t *delaunay.Triangulation) error {
	if r.dir == "" {
		return nil
	}
	format := r.format
	if format == render.FormatTerminal {
		format = render.FormatPNG
	}
	path := filepath.Join(r.dir, fmt.Sprintf("frame-%05d%s", r.count, format.Ext()))
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating frame")
	}
	err = render.Write(format, file, render.Capture(t.Advanced()), r.options)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "frame %d", r.count)
	}
	r.count++
	return nil
}
