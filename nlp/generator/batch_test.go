package generator

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/lm"
)

func TestBatchSkipsCommentBlock(t *testing.T) {
	batch := &Batch{Generator: &Generator{Oracle: readTestModel(t), Orders: &OrderScorer{}, BeamSize: DEFAULT_BEAM_SIZE}}
	doc := "# ::id 1\n" + MY_DOG + "\n\n# ::snt nothing to see\n"

	var out bytes.Buffer
	report, err := batch.Run(strings.NewReader(doc), &out)
	require.NoError(t, err)
	assert.Equal(t, "My dog .\n", out.String())
	assert.Equal(t, 2, report.Blocks)
	assert.Equal(t, 1, report.Generated)
	assert.Equal(t, []int{1}, report.Skipped)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 2, report.Stats.Nodes)
}

func TestBatchSkipsMalformed(t *testing.T) {
	batch := &Batch{Generator: newTestGenerator(shortest)}
	doc := "(d / dog\n\n(c / cat)\n\n\n(x / y / z)\n\n(b / bird)\n"

	var out bytes.Buffer
	report, err := batch.Run(strings.NewReader(doc), &out)
	require.NoError(t, err)
	assert.Equal(t, "Cat .\nBird .\n", out.String())
	assert.Equal(t, []int{0, 2}, report.Skipped)
	assert.Equal(t, 2, report.Generated)
}

func TestBatchKeepsOrder(t *testing.T) {
	var (
		doc      strings.Builder
		expected strings.Builder
	)
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&doc, "(x / noun%d)\n\n", i)
		fmt.Fprintf(&expected, "Noun%d .\n", i)
	}
	observed := 0
	batch := &Batch{
		Generator: newTestGenerator(shortest),
		Workers:   4,
		Observe:   func(int, *Result) { observed++ },
	}
	var out bytes.Buffer
	report, err := batch.Run(strings.NewReader(doc.String()), &out)
	require.NoError(t, err)
	assert.Equal(t, expected.String(), out.String())
	assert.Equal(t, 40, report.Generated)
	assert.Equal(t, 40, observed)
}

func TestBatchOracleFailureAborts(t *testing.T) {
	batch := &Batch{Generator: newTestGenerator(&failingOracle{}), Workers: 2}
	doc := MY_DOG + "\n\n(c / cat)\n"

	var out bytes.Buffer
	_, err := batch.Run(strings.NewReader(doc), &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lm.ErrOracle))
	assert.Empty(t, out.String())
}

func TestBatchRecordsFailures(t *testing.T) {
	batch := &Batch{Generator: newTestGenerator(shortest), Workers: 1}
	rootless := amr.New()
	require.NoError(t, rootless.SetConcept(rootless.Variable("c"), "cat"))

	report := &Report{}
	sentences, err := batch.decode([]job{
		{0, parse(t, `(d / dog)`)},
		{1, rootless},
		{2, parse(t, `(c / cat)`)},
	}, report)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dog .", "", "Cat ."}, sentences)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, 1, report.Failed[0].Block)
	assert.True(t, errors.Is(report.Failed[0].Err, amr.ErrMissingRoot))
	assert.Equal(t, 2, report.Generated)
}

func TestBatchInvalidGenerator(t *testing.T) {
	batch := &Batch{Generator: &Generator{Oracle: shortest}}
	_, err := batch.Run(strings.NewReader(MY_DOG), &bytes.Buffer{})
	assert.Error(t, err)
}
