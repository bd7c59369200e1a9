package lm

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const TEST_ARPA = `
\data\
ngram 1=6
ngram 2=4

\1-grams:
-99	<s>	-0.5
-1	</s>
-5	<unk>
-1	my	-0.2
-1	dog	-0.3
-1	.

\2-grams:
-0.1	<s> my
-0.1	my dog
-0.1	dog .
-0.1	. </s>

\end\
`

func readTestModel(t *testing.T) *ARPA {
	m, err := ReadARPA(strings.NewReader(TEST_ARPA))
	require.NoError(t, err)
	return m
}

func TestARPAScore(t *testing.T) {
	m := readTestModel(t)
	assert.Equal(t, 2, m.Order())
	assert.Equal(t, 10, m.Len())

	cases := []struct {
		text     string
		bos, eos bool
		expected float64
	}{
		{"my dog", false, false, -1.1},
		{"dog my", false, false, -2.3},
		{"my dog .", true, true, -0.4},
		{"cat", false, false, -5},
		{"", true, true, -1.5},
		{"", false, false, 0},
		{"  my   dog ", false, false, -1.1},
	}
	for _, c := range cases {
		score, err := m.Score(c.text, c.bos, c.eos)
		require.NoError(t, err)
		assert.InDelta(t, c.expected, score, 1e-9, "%q bos=%v eos=%v", c.text, c.bos, c.eos)
	}
}

func TestARPADefaultUnk(t *testing.T) {
	m, err := ReadARPA(strings.NewReader("\\data\\\nngram 1=1\n\\1-grams:\n-1\tdog\n\\end\\\n"))
	require.NoError(t, err)
	score, _ := m.Score("cat", false, false)
	assert.Equal(t, DEFAULT_UNK, score)
}

func TestARPAErrors(t *testing.T) {
	cases := []string{
		"",
		"\\data\\\nngram 1=2\n\\1-grams:\n-1\tdog\n\\end\\\n",
		"\\data\\\nngram x\n",
		"\\data\\\nngram 1=1\n\\1-grams:\nnan?\tdog\n",
		"\\data\\\nngram 1=1\n\\1-grams:\n-1\tdog\textra\tfields\n",
		"\\data\\\nngram 1=1\n\\x-grams:\n",
	}
	for _, c := range cases {
		_, err := ReadARPA(strings.NewReader(c))
		assert.Error(t, err, c)
	}
}

func TestReadARPAFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.arpa.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(TEST_ARPA))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, file.Close())

	m, err := ReadARPAFile(path)
	require.NoError(t, err)
	score, _ := m.Score("my dog", false, false)
	assert.InDelta(t, -1.1, score, 1e-9)

	_, err = ReadARPAFile(filepath.Join(t.TempDir(), "missing.arpa"))
	assert.Error(t, err)
}

func TestCachedAndCounting(t *testing.T) {
	counting := &Counting{Oracle: readTestModel(t)}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				score, err := cached.Score("my dog", false, false)
				assert.NoError(t, err)
				assert.InDelta(t, -1.1, score, 1e-9)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cached.Len())
	assert.LessOrEqual(t, counting.Calls(), uint64(8))

	_, _ = cached.Score("my dog", true, false)
	assert.Equal(t, 2, cached.Len(), "boundary flags are part of the key")

	_, err = NewCached(counting, 0)
	assert.Error(t, err)
}

func TestCostWrapsFailures(t *testing.T) {
	cost, err := Cost(Func(func(text string, bos, eos bool) float64 { return -2 }), "x", false, false)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cost)

	down := errors.New("connection refused")
	failing := &failingOracle{down}
	_, err = Cost(failing, "x", false, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOracle))
	assert.Equal(t, down, errors.Cause(err))

	cached, _ := NewCached(failing, 4)
	_, err = cached.Score("x", false, false)
	assert.Error(t, err)
	assert.Zero(t, cached.Len(), "failures are not cached")
}

type failingOracle struct {
	err error
}

func (f *failingOracle) Score(string, bool, bool) (float64, error) {
	return 0, f.err
}
