// Command treapstat builds many randomly seeded treaps and reports how their
// height grows with the number of keys.
//
// Usage:
//
//	treapstat [-n size]... [--seeds N] [--seed S] [--erase F] [--csv FILE] [--plot FILE.png]
package main

import (
	"os"
	"runtime"
)

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string) error {
	defer os.Stdout.Sync()

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			log.Error(err)
			return err
		}
		defer func() {
			logRotator.Close()
			logRotator = nil
		}()
	}

	log.Infof("measuring %d sizes with %d seeds each, erasing %.0f%% of keys",
		len(cfg.Sizes), cfg.Seeds, cfg.EraseRatio*100)

	results, err := measureAll(cfg)
	if err != nil {
		log.Errorf("measurement failed: %v", err)
		return err
	}

	if cfg.CSVFile != "" {
		if err := writeCSVFile(cfg.CSVFile, results); err != nil {
			log.Errorf("unable to write CSV: %v", err)
			return err
		}
		log.Infof("wrote %s", cfg.CSVFile)
	}

	if cfg.PlotFile != "" {
		if err := writePlotFile(cfg.PlotFile, results); err != nil {
			log.Errorf("unable to write plot: %v", err)
			return err
		}
		log.Infof("wrote %s", cfg.PlotFile)
	}

	return nil
}

func main() {
	// Use all processor cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Work around defer not working after os.Exit()
	if err := realMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
