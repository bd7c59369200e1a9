// Package lm scores candidate strings. Scores are log10 probabilities, the
// generator negates them into costs.
package lm

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

var ErrOracle = errors.New("lm: oracle failure")

// Oracle scores a whitespace tokenized string. bos and eos put the string in
// sentence-initial and sentence-final context. Implementations must be
// deterministic and safe for concurrent use.
type Oracle interface {
	Score(text string, bos, eos bool) (float64, error)
}

// Func adapts an infallible scoring function.
type Func func(text string, bos, eos bool) float64

func (f Func) Score(text string, bos, eos bool) (float64, error) {
	return f(text, bos, eos), nil
}

// OracleError reports a failed Score call. It matches ErrOracle under
// errors.Is.
type OracleError struct {
	Text string
	Err  error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("lm: scoring %q: %v", e.Text, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

func (e *OracleError) Cause() error { return e.Err }

func (e *OracleError) Is(target error) bool { return target == ErrOracle }

// Cost returns the negated score of a string.
func Cost(o Oracle, text string, bos, eos bool) (float64, error) {
	score, err := o.Score(text, bos, eos)
	if err != nil {
		return 0, &OracleError{text, err}
	}
	return -score, nil
}

type cacheKey struct {
	text     string
	bos, eos bool
}

// Cached memoizes an oracle in a bounded LRU.
type Cached struct {
	Oracle Oracle
	cache  *lru.Cache[cacheKey, float64]
}

var _ Oracle = &Cached{}

func NewCached(o Oracle, size int) (*Cached, error) {
	cache, err := lru.New[cacheKey, float64](size)
	if err != nil {
		return nil, errors.Wrap(err, "lm: creating score cache")
	}
	return &Cached{o, cache}, nil
}

func (c *Cached) Score(text string, bos, eos bool) (float64, error) {
	key := cacheKey{text, bos, eos}
	if score, ok := c.cache.Get(key); ok {
		return score, nil
	}
	score, err := c.Oracle.Score(text, bos, eos)
	if err != nil {
		return 0, err
	}
	c.cache.Add(key, score)
	return score, nil
}

func (c *Cached) Len() int {
	return c.cache.Len()
}

// Counting counts the calls reaching an oracle.
type Counting struct {
	Oracle Oracle
	calls  atomic.Uint64
}

var _ Oracle = &Counting{}

func (c *Counting) Score(text string, bos, eos bool) (float64, error) {
	c.calls.Add(1)
	return c.Oracle.Score(text, bos, eos)
}

func (c *Counting) Calls() uint64 {
	return c.calls.Load()
}
