package app

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonuts/commander"
	log "github.com/sirupsen/logrus"

	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/format/penman"
	"github.com/esmanning/emmAMR/nlp/generator"
	"github.com/esmanning/emmAMR/nlp/lm"
)

var inspectTop int

// InspectGraph prints every edge reachable from the root with the kind of
// its dependent and its best lexicalizations. Nodes with more than one
// parent are starred; they are listed at each occurrence but expanded once.
func InspectGraph(w io.Writer, gen *generator.Generator, g *amr.Graph, top int) error {
	root, err := g.Root()
	if err != nil {
		return err
	}
	var (
		reachable = g.Reachable()
		shared    = make(map[int]bool)
		expanded  = make(map[int]bool, len(reachable))
	)
	for _, id := range g.Reentrancies() {
		shared[id] = true
	}
	if len(reachable) < g.Len() {
		log.Warnf("%d of %d nodes are not reachable from the root", g.Len()-len(reachable), g.Len())
	}
	fmt.Fprintf(w, "# %d nodes, %d reachable, %d reentrant\n", g.Len(), len(reachable), len(shared))

	var visit func(e amr.Edge, depth int) error
	visit = func(e amr.Edge, depth int) error {
		kind := generator.Classify(g, e)
		if expanded[e.Dep] {
			kind = generator.KindReentrant
		}
		hyps, err := gen.Lexicalize(g, e)
		if err != nil {
			return err
		}
		if len(hyps) > top {
			hyps = hyps[:top]
		}
		label := g.Node(e.Dep).String()
		if shared[e.Dep] {
			label += "*"
		}
		fmt.Fprintf(w, "%s%s %s\t%v\t%s\n", strings.Repeat("  ", depth), e.Rel, label, kind, strings.Join(hyps.Texts(), " | "))
		if expanded[e.Dep] {
			return nil
		}
		expanded[e.Dep] = true
		for _, child := range g.Edges(e.Dep) {
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(root, 0)
}

func Inspect(cmd *commander.Command, args []string) error {
	SetLogLevel()
	if err := VerifyFlags(cmd, []string{"in"}); err != nil {
		return err
	}
	if err := VerifyFiles(inFile, lmFile); err != nil {
		return err
	}
	gen := &generator.Generator{
		Oracle:   lm.Func(func(string, bool, bool) float64 { return 0 }),
		BeamSize: 1,
	}
	if lmFile != "" {
		model, err := lm.ReadARPAFile(lmFile)
		if err != nil {
			return err
		}
		gen.Oracle = model
	}

	blocks, err := penman.ReadFile(inFile)
	if err != nil {
		return err
	}
	for _, block := range blocks {
		if block.Empty() {
			continue
		}
		g, err := penman.Parse(block.Text())
		if err != nil {
			log.Warnf("Skipping block %d: %v", block.Index, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "# block %d\n", block.Index)
		if err := InspectGraph(os.Stdout, gen, g, inspectTop); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func InspectCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Inspect,
		UsageLine: "inspect <file options> [arguments]",
		Short:     "show how each node of AMR graphs is lexicalized",
		Long: `
show the kind and best lexicalizations of every node of a PENMAN file

	$ ./emmamr inspect -in <amr file> [-lm <arpa file>] [-top 5]

Without a language model every candidate scores the same and candidates are
listed in the order they are generated.

`,
		Flag: *flag.NewFlagSet("inspect", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inFile, "in", "", "Input AMR file")
	cmd.Flag.StringVar(&lmFile, "lm", "", "ARPA language model (.gz for gzipped)")
	cmd.Flag.IntVar(&inspectTop, "top", 5, "Lexicalizations shown per node")
	cmd.Flag.BoolVar(&Debug, "debug", false, "Debug logging")
	return cmd
}
