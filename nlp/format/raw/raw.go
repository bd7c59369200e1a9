package raw

// Package raw writes raw sentence files, one sentence per line

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

func Write(writer io.Writer, sents []string) error {
	buffered := bufio.NewWriter(writer)
	for _, sent := range sents {
		if _, err := buffered.WriteString(sent); err != nil {
			return errors.Wrap(err, "raw: writing sentence")
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "raw: writing sentence")
		}
	}
	return errors.Wrap(buffered.Flush(), "raw: flushing")
}
