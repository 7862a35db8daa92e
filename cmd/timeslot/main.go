package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxatome/go-timeslot"
	"github.com/maxatome/go-timeslot/internal/config"
	"github.com/maxatome/go-timeslot/internal/logging"
)

// Options gathers user parameters together.
type Options struct {
	config     string
	envFile    string
	location   string
	verbose    bool
	debug      bool
	jsonOutput bool
	round      bool
	count      int

	clock    timeslot.Clock // nil means the system clock
	out      io.Writer
	logger   zerolog.Logger
	settings *config.Settings
	tsConfig *timeslot.Config
}

// init loads the settings and sets up logging. It is called once the
// flags are parsed.
func (o *Options) init(stderr io.Writer) error {
	o.logger = logging.Setup(stderr, o.verbose, o.debug)

	settings, err := config.Load(o.config, o.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if o.location != "" {
		settings.Location = o.location
	}

	tsConfig, err := settings.TimeslotConfig()
	if err != nil {
		return err
	}
	tsConfig.Clock = o.clock

	o.settings = settings
	o.tsConfig = tsConfig

	o.logger.Info().
		Str("location", tsConfig.Location.String()).
		Msg("time zone")
	o.logger.Debug().
		Int("hours", settings.Hours).
		Int("minutes", settings.Minutes).
		Strs("layouts", settings.Layouts).
		Msg("settings loaded")
	return nil
}

// print displays ts, using JSON if --json flag is set.
func (o *Options) print(ts timeslot.Timeslot) error {
	if o.jsonOutput {
		buf, err := json.Marshal(ts)
		if err != nil {
			return err
		}
		fmt.Fprintln(o.out, string(buf))
		return nil
	}

	fmt.Fprintln(o.out, ts)
	return nil
}

func newRootCmd(pOptions *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timeslot",
		Short: "Compute time slots",
		Long: `Compute time slots: intervals starting at START and lasting HOURS hours
and MINUTES minutes. The end of a slot is one second before the start of
the following one.

START and INSTANT are "now" or a date/time, see the layouts action.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return pOptions.init(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&pOptions.config, "config", "",
		"YAML config file (default ~/"+config.DefaultFile+")")
	flags.StringVar(&pOptions.envFile, "env-file", "",
		"dotenv file (default "+config.DefaultEnvFile+")")
	flags.StringVar(&pOptions.location, "location", "",
		"time zone of START and INSTANT, overrides "+config.EnvLocation)
	flags.BoolVar(&pOptions.verbose, "verbose", false, "print verbose information")
	flags.BoolVar(&pOptions.debug, "debug", false, "print debug information")
	flags.BoolVar(&pOptions.jsonOutput, "json", false, "display slots using JSON format")
	flags.BoolVar(&pOptions.round, "round", false,
		"round START to the beginning of its clock hour")
	flags.IntVar(&pOptions.count, "count", 1,
		"number of slots displayed by after and before actions")

	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action := actions[name]
		rootCmd.AddCommand(&cobra.Command{
			Use:   strings.TrimSpace(name + " " + action.Params()),
			Short: action.Doc(),
			RunE: func(cmd *cobra.Command, args []string) error {
				pOptions.out = cmd.OutOrStdout()
				return action.Do(pOptions, args)
			},
		})
	}

	return rootCmd
}

func main() {
	var options Options

	err := newRootCmd(&options).Execute()
	if err != nil {
		if errors.Is(err, errOutside) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "***", err)
		os.Exit(1)
	}
}
