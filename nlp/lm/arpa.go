package lm

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

const (
	BOS = "<s>"
	EOS = "</s>"
	UNK = "<unk>"

	// DEFAULT_UNK is the log10 probability of unknown words when the model
	// has no <unk> entry
	DEFAULT_UNK = -100.0
)

type ngram struct {
	prob, backoff float64
}

// ARPA is a backoff n-gram language model.
type ARPA struct {
	order  int
	ngrams map[string]ngram
	unk    float64
}

var _ Oracle = &ARPA{}

func (m *ARPA) Order() int {
	return m.order
}

func (m *ARPA) Len() int {
	return len(m.ngrams)
}

// prob is log10 p(word | context) with backoff.
func (m *ARPA) prob(context []string, word string) float64 {
	var backoff float64
	for n := min(len(context), m.order-1); n >= 0; n-- {
		history := context[len(context)-n:]
		key := word
		if n > 0 {
			key = strings.Join(history, " ") + " " + word
		}
		if entry, exists := m.ngrams[key]; exists {
			return backoff + entry.prob
		}
		if n > 0 {
			if entry, exists := m.ngrams[strings.Join(history, " ")]; exists {
				backoff += entry.backoff
			}
		}
	}
	return backoff + m.unk
}

// Score sums the log10 probability of every token of text, optionally
// conditioned on <s> and followed by </s>.
func (m *ARPA) Score(text string, bos, eos bool) (float64, error) {
	words := strings.Fields(text)
	context := make([]string, 0, len(words)+1)
	if bos {
		context = append(context, BOS)
	}
	var total float64
	for _, word := range words {
		total += m.prob(context, word)
		context = append(context, word)
	}
	if eos {
		total += m.prob(context, EOS)
	}
	return total, nil
}

// ReadARPA reads a model in ARPA text format.
func ReadARPA(reader io.Reader) (*ARPA, error) {
	var (
		scanner  = bufio.NewScanner(reader)
		counts   = make(map[int]int)
		seen     = make(map[int]int)
		section  = -1 // -1 before \data\, 0 in \data\, n in \n-grams:
		lineNum  int
		finished bool
		m        = &ARPA{ngrams: make(map[string]ngram), unk: DEFAULT_UNK}
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		switch {
		case line == `\data\`:
			section = 0
			continue
		case line == `\end\`:
			finished = true
			continue
		case strings.HasPrefix(line, `\`) && strings.HasSuffix(line, `-grams:`):
			n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(line, `\`), `-grams:`))
			if err != nil || n < 1 {
				return nil, errors.Errorf("lm: line %d: bad section header %q", lineNum, line)
			}
			section = n
			continue
		}
		if finished {
			break
		}
		switch {
		case section < 0:
			continue
		case section == 0:
			if !strings.HasPrefix(line, "ngram ") {
				return nil, errors.Errorf("lm: line %d: expected ngram count, got %q", lineNum, line)
			}
			decl := strings.SplitN(strings.TrimPrefix(line, "ngram "), "=", 2)
			if len(decl) != 2 {
				return nil, errors.Errorf("lm: line %d: bad ngram count %q", lineNum, line)
			}
			n, err1 := strconv.Atoi(strings.TrimSpace(decl[0]))
			count, err2 := strconv.Atoi(strings.TrimSpace(decl[1]))
			if err1 != nil || err2 != nil || n < 1 {
				return nil, errors.Errorf("lm: line %d: bad ngram count %q", lineNum, line)
			}
			counts[n] = count
			m.order = max(m.order, n)
		default:
			fields := strings.Fields(line)
			if len(fields) != section+1 && len(fields) != section+2 {
				return nil, errors.Errorf("lm: line %d: expected %d-gram entry, got %q", lineNum, section, line)
			}
			var entry ngram
			var err error
			if entry.prob, err = strconv.ParseFloat(fields[0], 64); err != nil {
				return nil, errors.Wrapf(err, "lm: line %d", lineNum)
			}
			if len(fields) == section+2 {
				if entry.backoff, err = strconv.ParseFloat(fields[section+1], 64); err != nil {
					return nil, errors.Wrapf(err, "lm: line %d", lineNum)
				}
			}
			key := strings.Join(fields[1:section+1], " ")
			m.ngrams[key] = entry
			seen[section]++
			if section == 1 && key == UNK {
				m.unk = entry.prob
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "lm: reading model")
	}
	if m.order == 0 {
		return nil, errors.New(`lm: missing \data\ section`)
	}
	for n, count := range counts {
		if seen[n] != count {
			return nil, errors.Errorf("lm: header declares %d %d-grams, found %d", count, n, seen[n])
		}
	}
	return m, nil
}

// ReadARPAFile reads a model from disk, transparently decompressing files
// ending in .gz.
func ReadARPAFile(filename string) (*ARPA, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "lm: opening %s", filename)
	}
	defer file.Close()
	var reader io.Reader = file
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.Wrapf(err, "lm: decompressing %s", filename)
		}
		defer gz.Close()
		reader = gz
	}
	m, err := ReadARPA(reader)
	return m, errors.Wrapf(err, "lm: %s", filename)
}
