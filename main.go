package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/mgtv-tech/gosema/cmd"
	"github.com/mgtv-tech/gosema/config"
	"github.com/mgtv-tech/gosema/pkg/log"
	"github.com/mgtv-tech/gosema/pkg/util"
)

func main() {
	maxprocs.Set()
	panicIfError(config.LoadFlags())
	panicIfError(runCmd())
}

func runCmd() error {
	var cmder cmd.Cmd
	switch config.GetFlag().Cmd {
	case "bench":
		if path := config.GetFlag().ConfigPath; path != "" {
			panicIfError(config.InitConfig(path))
		}
		panicIfError(log.InitLog(*config.Get().Log))
		panicIfError(applyBenchFlags())
		cmder = cmd.NewBenchCmd()
	default:
		panicIfError(fmt.Errorf("does not support command(%s)", config.GetFlag().Cmd))
	}

	util.SafeGo(func() {
		handleSignal(cmder)
	}, nil)

	return cmder.Run()
}

// flags override whatever the config file set
func applyBenchFlags() error {
	flags := config.GetFlag().BenchCmd
	bcfg := config.Get().Bench
	if flags.Producers > 0 {
		bcfg.Producers = flags.Producers
	}
	if flags.Consumers > 0 {
		bcfg.Consumers = flags.Consumers
	}
	if flags.Duration != "" {
		d, err := time.ParseDuration(flags.Duration)
		if err != nil {
			return err
		}
		bcfg.Duration = d
	}
	return nil
}

func handleSignal(c cmd.Cmd) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGPIPE, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGABRT)
	for {
		sig := <-signals
		log.Infof("received signal: %s", sig)
		switch sig {
		case syscall.SIGPIPE:
		default:
			log.Infof("stop cmd(%s)", c.Name())
			if err := c.Stop(); err != nil {
				log.Errorf("cmd(%s) stopped with error : %v", c.Name(), err)
			}
			log.Sync()
			return
		}
	}
}

func panicIfError(err error) {
	if err == nil {
		return
	}
	log.Panic(err)
}
