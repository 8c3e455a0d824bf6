package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultSeeds      = 32
	defaultBaseSeed   = 1
	defaultEraseRatio = 0.5
	defaultLogLevel   = "info"
	maxSize           = 1 << 24
)

// defaultSizes are used when no --size option is given.
var defaultSizes = []int{16, 64, 256, 1024, 4096, 16384, 65536}

// config defines the configuration options for treapstat.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Sizes      []int   `short:"n" long:"size" description:"Tree size to measure; may be repeated (default 16 to 65536 in powers of 4)"`
	Seeds      int     `short:"s" long:"seeds" description:"Number of trees built per size"`
	BaseSeed   uint64  `long:"seed" description:"Seed of the first tree; tree i uses seed+i"`
	EraseRatio float64 `short:"e" long:"erase" description:"Fraction of keys erased after loading {0-1}"`
	CSVFile    string  `long:"csv" description:"Write per-size statistics to this CSV file"`
	PlotFile   string  `long:"plot" description:"Write a height chart to this PNG file"`
	LogFile    string  `long:"logfile" description:"Also write log output to this rotated file"`
	DebugLevel string  `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := subsystemLoggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, supportedSubsystems())
		}
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid", logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}
	return nil
}

// loadConfig initializes and parses the config using command line options.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Seeds:      defaultSeeds,
		BaseSeed:   defaultBaseSeed,
		EraseRatio: defaultEraseRatio,
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	funcName := "loadConfig"
	fail := func(format string, a ...interface{}) (*config, error) {
		err := fmt.Errorf("%s: "+format, append([]interface{}{funcName}, a...)...)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	if len(cfg.Sizes) == 0 {
		cfg.Sizes = append([]int(nil), defaultSizes...)
	}
	for _, n := range cfg.Sizes {
		if n < 1 || n > maxSize {
			return fail("the specified size [%d] is out of range -- must be between 1 and %d", n, maxSize)
		}
	}

	if cfg.Seeds < 1 {
		return fail("the number of seeds [%d] must be positive", cfg.Seeds)
	}

	if cfg.EraseRatio < 0 || cfg.EraseRatio > 1 {
		return fail("the erase fraction [%v] must be between 0 and 1", cfg.EraseRatio)
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return fail("%v", err)
	}

	for _, path := range []*string{&cfg.CSVFile, &cfg.PlotFile, &cfg.LogFile} {
		if *path != "" {
			*path = cleanAndExpandPath(*path)
		}
	}
	if cfg.PlotFile != "" && !strings.EqualFold(filepath.Ext(cfg.PlotFile), ".png") {
		return fail("the plot file [%v] must have a .png extension", cfg.PlotFile)
	}

	return &cfg, nil
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", home, 1)
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
