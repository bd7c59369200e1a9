package app

import (
	"flag"
	"os"
	"time"

	"github.com/gonuts/commander"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/esmanning/emmAMR/nlp/generator"
	"github.com/esmanning/emmAMR/nlp/lm"
)

func GenerateConfigOut(conf *Config) {
	log.Info("Configuration")
	log.Infof("Beam:\t\t%d", conf.Beam)
	log.Infof("LM:\t\t\t%s", conf.LM)
	log.Infof("Pair Model:\t\t%s", conf.PairModel)
	log.Infof("Coreness Model:\t%s", conf.CorenessModel)
	log.Infof("Self Pairs:\t\t%v", conf.SelfPairs)
	log.Infof("Workers:\t\t%d", conf.Workers)
	log.Infof("Score Cache:\t%d", conf.CacheSize)
	log.Infof("CPUs:\t\t%d", CPUs)
	log.Infof("Input:\t\t%s", inFile)
	log.Infof("Output:\t\t%s", outFile)
	if metricsFile != "" {
		log.Infof("Metrics:\t\t%s", metricsFile)
	}
}

// RunGenerate generates every graph of the input file into the output file.
func RunGenerate(conf *Config, input, output string, metrics *Metrics) (*generator.Report, error) {
	oracle, counting, err := NewOracle(conf)
	if err != nil {
		return nil, err
	}
	orders, err := NewOrderScorer(conf)
	if err != nil {
		return nil, err
	}
	batch := &generator.Batch{
		Generator: &generator.Generator{Oracle: oracle, Orders: orders, BeamSize: conf.Beam},
		Workers:   conf.Workers,
		Observe:   metrics.Observe,
	}

	in, err := os.Open(input)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", input)
	}
	defer in.Close()
	out, err := os.Create(output)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", output)
	}

	report, err := batch.Run(in, out)
	if closeErr := out.Close(); err == nil {
		err = errors.Wrapf(closeErr, "closing %s", output)
	}
	if err != nil {
		return report, err
	}
	metrics.Report(report, counting.Calls())
	if cached, ok := oracle.(*lm.Cached); ok {
		log.Infof("Language model scored %d strings, %d scores cached", counting.Calls(), cached.Len())
	} else {
		log.Infof("Language model scored %d strings", counting.Calls())
	}
	return report, nil
}

func Generate(cmd *commander.Command, args []string) error {
	SetLogLevel()
	if err := VerifyFlags(cmd, []string{"in", "out"}); err != nil {
		return err
	}
	conf, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := VerifyFiles(inFile, conf.LM, conf.PairModel, conf.CorenessModel); err != nil {
		return err
	}
	GenerateConfigOut(conf)

	start := time.Now()
	metrics := NewMetrics()
	report, err := RunGenerate(conf, inFile, outFile, metrics)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"blocks":      report.Blocks,
		"generated":   report.Generated,
		"skipped":     len(report.Skipped),
		"failed":      len(report.Failed),
		"expansions":  report.Stats.Expansions,
		"oracleCalls": report.Stats.OracleCalls,
	}).Infof("Generated %d sentences in %v", report.Generated, time.Since(start))
	for _, failure := range report.Failed {
		log.Warnf("Block %d: %v", failure.Block, failure.Err)
	}
	if metricsFile != "" {
		return metrics.WriteFile(metricsFile)
	}
	return nil
}

func GenerateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Generate,
		UsageLine: "generate <file options> [arguments]",
		Short:     "generate sentences from AMR graphs",
		Long: `
generate one English sentence per AMR graph of a PENMAN file

	$ ./emmamr generate -lm <arpa file> -in <amr file> -out <output file> [options]

Blocks without a graph, or with a graph that does not parse, are skipped and
get no output line. Graphs that fail to generate get an empty line.

`,
		Flag: *flag.NewFlagSet("generate", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&lmFile, "lm", "", "ARPA language model (.gz for gzipped)")
	cmd.Flag.StringVar(&inFile, "in", "", "Input AMR file")
	cmd.Flag.StringVar(&outFile, "out", "", "Output sentence file")
	cmd.Flag.StringVar(&pairFile, "p", "", "Relation pair ordering model")
	cmd.Flag.StringVar(&corenessFile, "c", "", "Relation coreness ordering model")
	cmd.Flag.BoolVar(&SelfPairs, "selfpairs", false, "Score each relation paired with itself")
	cmd.Flag.IntVar(&BeamSize, "k", generator.DEFAULT_BEAM_SIZE, "Beam size")
	cmd.Flag.IntVar(&Workers, "workers", 0, "Sentences generated concurrently; 0 = GOMAXPROCS")
	cmd.Flag.IntVar(&CacheSize, "cache", DEFAULT_CACHE_SIZE, "Language model score cache size; 0 = no cache")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML configuration file")
	cmd.Flag.StringVar(&metricsFile, "metrics", "", "Write prometheus metrics to this file")
	cmd.Flag.BoolVar(&Debug, "debug", false, "Debug logging")
	return cmd
}
