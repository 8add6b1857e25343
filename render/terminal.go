package render

import (
	"io"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Print the frame inline with the iTerm image protocol.
func Terminal(w io.Writer, f Frame, o Options) error {
	file, err := os.CreateTemp("", "delaunay-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temp image")
	}
	defer os.Remove(file.Name())

	err = PNG(file, f, o)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	imgcat.CatFile(file.Name(), w)
	return nil
}
