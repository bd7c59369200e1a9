package app

import (
	"flag"
	"runtime"

	"github.com/gonuts/commander"
	log "github.com/sirupsen/logrus"
)

const (
	NUM_CPUS_FLAG = "cpus"
	APP_NAME      = "emmamr"
)

var (
	CPUs int
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		GenerateCmd(),
		InspectCmd(),
	}
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   APP_NAME + " <command> [options]",
		Short:       "generate English sentences from AMR graphs",
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet(APP_NAME, flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.IntVar(&CPUs, NUM_CPUS_FLAG, 0, "Max CPUS to use (runtime.GOMAXPROCS); 0 = all")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	maxCPUs := runtime.NumCPU()
	if CPUs > maxCPUs {
		log.Warnf("Number of CPUs capped to all available (%d)", maxCPUs)
		CPUs = 0
	}
	if CPUs == 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}

	return wrapped
}
