package generator

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/esmanning/emmAMR/util/conf"
)

var ErrModel = errors.New("generator: bad ordering model")

func parseFloat(field string, line int) (float64, error) {
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrModel, "line %d: %v", line, err)
	}
	return value, nil
}

func pairModelFrom(c *conf.Conf) (PairModel, error) {
	model := make(PairModel, len(c.Values))
	for i, fields := range c.Fields() {
		if len(fields) != 3 {
			return nil, errors.Wrapf(ErrModel, "line %d: expected relation, relation, probability", i+1)
		}
		p, err := parseFloat(fields[2], i+1)
		if err != nil {
			return nil, err
		}
		if p <= 0 || p > 1 {
			return nil, errors.Wrapf(ErrModel, "line %d: probability %v not in (0,1]", i+1, p)
		}
		model[[2]string{fields[0], fields[1]}] = p
	}
	return model, nil
}

func corenessModelFrom(c *conf.Conf) (CorenessModel, error) {
	model := make(CorenessModel, len(c.Values))
	for i, fields := range c.Fields() {
		if len(fields) != 2 {
			return nil, errors.Wrapf(ErrModel, "line %d: expected relation, position", i+1)
		}
		pos, err := parseFloat(fields[1], i+1)
		if err != nil {
			return nil, err
		}
		if pos < 0 || pos > 1 {
			return nil, errors.Wrapf(ErrModel, "line %d: position %v not in [0,1]", i+1, pos)
		}
		model[fields[0]] = pos
	}
	return model, nil
}

// ReadPairModel reads "relation<TAB>relation<TAB>probability" lines.
func ReadPairModel(reader io.Reader) (PairModel, error) {
	c, err := conf.Read(reader)
	if err != nil {
		return nil, err
	}
	return pairModelFrom(c)
}

func ReadPairModelFile(filename string) (PairModel, error) {
	c, err := conf.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	model, err := pairModelFrom(c)
	return model, errors.Wrap(err, filename)
}

// ReadCorenessModel reads "relation<TAB>position" lines.
func ReadCorenessModel(reader io.Reader) (CorenessModel, error) {
	c, err := conf.Read(reader)
	if err != nil {
		return nil, err
	}
	return corenessModelFrom(c)
}

func ReadCorenessModelFile(filename string) (CorenessModel, error) {
	c, err := conf.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	model, err := corenessModelFrom(c)
	return model, errors.Wrap(err, filename)
}
