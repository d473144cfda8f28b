package config

import "flag"

var (
	flagVar *Flags
)

func init() {
	flagVar = &Flags{}
}

func GetFlag() *Flags {
	return flagVar
}

type Flags struct {
	ConfigPath string
	Cmd        string
	BenchCmd   BenchCmdFlags
}

type BenchCmdFlags struct {
	Producers int
	Consumers int
	Duration  string
}

func LoadFlags() error {
	flag.StringVar(&flagVar.Cmd, "cmd", "bench", "command name : bench")
	flag.StringVar(&flagVar.ConfigPath, "conf", "", "config file path")

	flag.IntVar(&flagVar.BenchCmd.Producers, "bench.producers", 0, "signaling goroutines")
	flag.IntVar(&flagVar.BenchCmd.Consumers, "bench.consumers", 0, "waiting goroutines")
	flag.StringVar(&flagVar.BenchCmd.Duration, "bench.duration", "", "bench duration, e.g. 30s")

	flag.Parse()
	return nil
}
