package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"morproj/config"
	"morproj/logx"
	"morproj/runner"
)

const appName = "mor-proj"

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug|info|error")
	outPath := flag.String("out", "", "write the result JSON here instead of stdout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] config.json\n", appName)
		flag.PrintDefaults()
	}
	flag.Parse()

	logx.SetLevel(*logLevel)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	configFile := flag.Arg(0)

	cfg, err := loadConfig(configFile)
	if err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}

	logx.Debugf("starting %s", appName)
	logx.Debugf("instance %q: iters=%d threads=%d", cfg.InstanceName, cfg.Iters, cfg.NumberOfThreads)

	if err := run(cfg, *outPath); err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := config.LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	if cfg.Instance == nil {
		return nil, fmt.Errorf("config %s: missing instance", path)
	}
	cfg.Instance.Init(cfg.GraspConfig.OptimizeCost)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Instance.Validate(); err != nil {
		return nil, fmt.Errorf("instance in %s: %w", path, err)
	}
	return cfg, nil
}

func run(cfg *config.Config, outPath string) error {
	sol, err := runner.Run(context.Background(), *cfg, cfg.Instance)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if sol == nil {
		logx.Errorf("no feasible solution found across %d worker(s)", cfg.NumberOfThreads)
	}

	out := config.Output{
		RunID:    uuid.New().String(),
		Name:     cfg.InstanceName,
		Solution: sol,
		Instance: cfg.Instance,
	}
	return writeOutput(out, outPath)
}

func writeOutput(out config.Output, path string) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
