package generator

import (
	"context"
	"io"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/format/penman"
	"github.com/esmanning/emmAMR/nlp/format/raw"
	"github.com/esmanning/emmAMR/nlp/lm"
)

// Failure is a sentence whose graph parsed but could not be generated.
type Failure struct {
	Block int
	Err   error
}

// Report accounts for every block of a document. Blocks are either skipped
// (no graph, or a graph that does not parse; no output line), failed (an
// empty output line) or generated.
type Report struct {
	Blocks    int
	Generated int
	Skipped   []int
	Failed    []Failure
	Stats     Stats
}

// Batch generates one sentence per graph of a document.
type Batch struct {
	Generator *Generator
	// Workers bounds the sentences generated at once, 0 means GOMAXPROCS
	Workers int
	// Observe, if set, sees every generated sentence; calls are serialized
	Observe func(block int, result *Result)
}

type job struct {
	block int
	graph *amr.Graph
}

func (b *Batch) jobs(blocks []penman.Block, report *Report) []job {
	jobs := make([]job, 0, len(blocks))
	for _, block := range blocks {
		if block.Empty() {
			log.Debugf("Skipping block %d: no graph", block.Index)
			report.Skipped = append(report.Skipped, block.Index)
			continue
		}
		g, err := penman.Parse(block.Text())
		if err != nil {
			log.Warnf("Skipping block %d: %v", block.Index, err)
			report.Skipped = append(report.Skipped, block.Index)
			continue
		}
		jobs = append(jobs, job{block.Index, g})
	}
	return jobs
}

// Decode generates the sentences of parsed blocks in input order. Oracle
// failures abort the whole batch; any other generation error is recorded
// and yields an empty sentence.
func (b *Batch) Decode(blocks []penman.Block) ([]string, *Report, error) {
	if err := b.Generator.validate(); err != nil {
		return nil, nil, err
	}
	report := &Report{Blocks: len(blocks)}
	sentences, err := b.decode(b.jobs(blocks, report), report)
	return sentences, report, err
}

func (b *Batch) decode(jobs []job, report *Report) ([]string, error) {
	sentences := make([]string, len(jobs))

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var (
		mu          sync.Mutex
		group, ctx  = errgroup.WithContext(context.Background())
		failedIndex = make(map[int]error)
	)
	group.SetLimit(workers)
	for i, j := range jobs {
		i, j := i, j
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			result, err := b.Generator.Generate(j.graph)
			if errors.Is(err, lm.ErrOracle) {
				return errors.Wrapf(err, "block %d", j.block)
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failedIndex[i] = err
				return nil
			}
			sentences[i] = result.Sentence
			if b.Observe != nil {
				b.Observe(j.block, result)
			}
			report.Generated++
			report.Stats.Add(result.Stats)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	for i, j := range jobs {
		if err, failed := failedIndex[i]; failed {
			log.Warnf("Failed generating block %d: %v", j.block, err)
			report.Failed = append(report.Failed, Failure{j.block, err})
		}
	}
	return sentences, nil
}

// Run reads a document of graphs and writes one line per generated graph.
func (b *Batch) Run(reader io.Reader, writer io.Writer) (*Report, error) {
	blocks, err := penman.Blocks(reader)
	if err != nil {
		return nil, err
	}
	sentences, report, err := b.Decode(blocks)
	if err != nil {
		return report, err
	}
	return report, raw.Write(writer, sentences)
}
