package conf

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Conf holds the non-empty, non-comment lines of a line oriented file.
type Conf struct {
	Values []string
}

// Fields splits every value on tabs.
func (c *Conf) Fields() [][]string {
	retval := make([][]string, len(c.Values))
	for i, line := range c.Values {
		retval[i] = strings.Split(line, "\t")
	}
	return retval
}

func Read(reader io.Reader) (*Conf, error) {
	scanner := bufio.NewScanner(reader)
	retval := make([]string, 0, 64)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) > 0 && line[0] != '#' {
			retval = append(retval, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading conf")
	}
	return &Conf{retval}, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	return Read(file)
}
