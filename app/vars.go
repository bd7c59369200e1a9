package app

import (
	"flag"
	"os"

	"github.com/gonuts/commander"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/esmanning/emmAMR/nlp/generator"
	"github.com/esmanning/emmAMR/nlp/lm"
)

const DEFAULT_CACHE_SIZE = 100000

var (
	// file names
	lmFile, pairFile, corenessFile string
	inFile, outFile                string
	confFile, metricsFile          string

	// processing options
	BeamSize, Workers, CacheSize int
	SelfPairs, Debug             bool
)

// Config is the generation setup, read from a YAML file and overridden by
// flags given on the command line.
type Config struct {
	Beam          int    `yaml:"beam"`
	LM            string `yaml:"lm"`
	PairModel     string `yaml:"pairModel"`
	CorenessModel string `yaml:"corenessModel"`
	SelfPairs     bool   `yaml:"selfPairs"`
	Workers       int    `yaml:"workers"`
	CacheSize     int    `yaml:"cacheSize"`
}

func DefaultConfig() *Config {
	return &Config{
		Beam:      generator.DEFAULT_BEAM_SIZE,
		CacheSize: DEFAULT_CACHE_SIZE,
	}
}

// ReadConfig reads a YAML config on top of the defaults. Unknown keys are
// errors.
func ReadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", filename)
	}
	defer file.Close()

	conf := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", filename)
	}
	return conf, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Beam < 1:
		return errors.Errorf("beam size %d < 1", c.Beam)
	case c.Workers < 0:
		return errors.Errorf("workers %d < 0", c.Workers)
	case c.CacheSize < 0:
		return errors.Errorf("cache size %d < 0", c.CacheSize)
	case c.LM == "":
		return errors.New("no language model")
	}
	return nil
}

// Override copies the flags set on the command line into the config.
func (c *Config) Override(flags *flag.FlagSet) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "k":
			c.Beam = BeamSize
		case "lm":
			c.LM = lmFile
		case "p":
			c.PairModel = pairFile
		case "c":
			c.CorenessModel = corenessFile
		case "selfpairs":
			c.SelfPairs = SelfPairs
		case "workers":
			c.Workers = Workers
		case "cache":
			c.CacheSize = CacheSize
		}
	})
}

// LoadConfig builds the config of a command from its -conf file and flags.
func LoadConfig(cmd *commander.Command) (*Config, error) {
	conf := DefaultConfig()
	if confFile != "" {
		var err error
		if conf, err = ReadConfig(confFile); err != nil {
			return nil, err
		}
	}
	conf.Override(&cmd.Flag)
	return conf, conf.Validate()
}

// NewOracle reads the language model, memoized unless the cache size is 0.
// The returned counter sees every call that reaches the model.
func NewOracle(conf *Config) (lm.Oracle, *lm.Counting, error) {
	model, err := lm.ReadARPAFile(conf.LM)
	if err != nil {
		return nil, nil, err
	}
	log.Infof("Read %d-gram model with %d n-grams", model.Order(), model.Len())
	counting := &lm.Counting{Oracle: model}
	if conf.CacheSize == 0 {
		return counting, counting, nil
	}
	cached, err := lm.NewCached(counting, conf.CacheSize)
	if err != nil {
		return nil, nil, err
	}
	return cached, counting, nil
}

func NewOrderScorer(conf *Config) (*generator.OrderScorer, error) {
	scorer := &generator.OrderScorer{IncludeSelfPairs: conf.SelfPairs}
	var err error
	if conf.PairModel != "" {
		if scorer.Pairs, err = generator.ReadPairModelFile(conf.PairModel); err != nil {
			return nil, err
		}
		log.Infof("Read %d relation pairs", len(scorer.Pairs))
	}
	if conf.CorenessModel != "" {
		if scorer.Coreness, err = generator.ReadCorenessModelFile(conf.CorenessModel); err != nil {
			return nil, err
		}
		log.Infof("Read coreness of %d relations", len(scorer.Coreness))
	}
	return scorer, nil
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Errorf("Error accessing file %s: %v", filename, err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return errors.Errorf("required flag -%s not set", name)
		}
	}
	return nil
}

func VerifyFiles(filenames ...string) error {
	for _, filename := range filenames {
		if filename != "" && !VerifyExists(filename) {
			return errors.Errorf("can not read %s", filename)
		}
	}
	return nil
}

func SetLogLevel() {
	if Debug {
		log.SetLevel(log.DebugLevel)
	}
}
