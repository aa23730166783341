package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagScript   = flag.String("script", "", "Input script to replay")
	flagFrames   = flag.Int("frames", 0, "Number of frames to simulate")
	flagTickRate = flag.Int("tick-rate", 0, "Simulation frames per second")
	flagRealtime = flag.Bool("realtime", false, "Pace frames in wall-clock time")
	flagDump     = flag.String("dump-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpPath returns the --dump-config target, if any.
func DumpPath() string {
	return *flagDump
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Curves.Enabled = true
	}
	if *flagScript != "" {
		cfg.Sim.Script = *flagScript
	}
	if *flagFrames > 0 {
		cfg.Sim.Frames = *flagFrames
	}
	if *flagTickRate > 0 {
		cfg.Sim.TickRate = *flagTickRate
	}
	if *flagRealtime {
		cfg.Sim.Realtime = true
	}
}
