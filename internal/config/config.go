// Package config loads the settings of the timeslot command.
//
// Settings come from, by increasing priority: a YAML file (by
// default ~/.timeslot.yaml), a dotenv file (by default .env in the
// current directory) and TIMESLOT_* environment variables. Both files
// are optional when their default path is used. The YAML file is
// refused if readable and/or writable by others.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // IANA names even without system zoneinfo

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/maxatome/go-timeslot"
)

// Default file names.
const (
	DefaultFile    = ".timeslot.yaml"
	DefaultEnvFile = ".env"
)

// Environment variables.
const (
	EnvLocation = "TIMESLOT_LOCATION"
	EnvHours    = "TIMESLOT_HOURS"
	EnvMinutes  = "TIMESLOT_MINUTES"
	EnvLayouts  = "TIMESLOT_LAYOUTS" // comma separated
)

// ErrUnsafeFile is matched by the error returned by Load when the
// YAML file is readable and/or writable by others.
var ErrUnsafeFile = errors.New("file readable and/or writable by others")

// Settings gathers the timeslot command settings.
type Settings struct {
	Location string   `yaml:"location"` // IANA name, "" or "Local" for local time
	Hours    int      `yaml:"hours"`    // default hours of a slot
	Minutes  int      `yaml:"minutes"`  // default minutes of a slot
	Layouts  []string `yaml:"layouts"`  // replaces timeslot.Layouts if not empty
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		Hours:   timeslot.DefaultHours,
		Minutes: timeslot.DefaultMinutes,
	}
}

// Load reads the YAML file then the dotenv file, then applies the
// environment. An empty file name means the default one, which may
// not exist.
func Load(file, envFile string) (*Settings, error) {
	s := Default()

	mustExist := file != ""
	if !mustExist {
		home, err := os.UserHomeDir()
		if err == nil {
			file = filepath.Join(home, DefaultFile)
		}
	}
	if file != "" {
		err := s.readFile(file, mustExist)
		if err != nil {
			return nil, err
		}
	}

	mustExist = envFile != ""
	if !mustExist {
		envFile = DefaultEnvFile
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if mustExist || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot read `%s' file: %w", envFile, err)
		}
		dotenv = nil
	}

	err = s.applyEnv(func(key string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return dotenv[key]
	})
	if err != nil {
		return nil, err
	}

	return s, s.Validate()
}

// readFile reads the YAML file. It is refused if readable and/or
// writable by others.
func (s *Settings) readFile(file string, mustExist bool) error {
	fh, err := os.Open(file)
	if err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot read `%s' file: %w", file, err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat `%s' file: %w", file, err)
	}
	if info.Mode()&06 != 0 {
		return fmt.Errorf("`%s' file: %w", file, ErrUnsafeFile)
	}

	content, err := io.ReadAll(fh)
	if err != nil {
		return fmt.Errorf("cannot read `%s' file: %w", file, err)
	}

	err = yaml.Unmarshal(content, s)
	if err != nil {
		return fmt.Errorf("invalid config file `%s' contents: %w", file, err)
	}
	return nil
}

func (s *Settings) applyEnv(getenv func(string) string) error {
	if value := getenv(EnvLocation); value != "" {
		s.Location = value
	}

	for _, env := range []struct {
		name string
		ptr  *int
	}{
		{EnvHours, &s.Hours},
		{EnvMinutes, &s.Minutes},
	} {
		value := getenv(env.name)
		if value == "" {
			continue
		}
		num, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s value `%s': %w", env.name, value, err)
		}
		*env.ptr = num
	}

	if value := getenv(EnvLayouts); value != "" {
		s.Layouts = strings.Split(value, ",")
	}
	return nil
}

// Validate checks s fields.
func (s *Settings) Validate() error {
	if s.Hours < 0 || s.Minutes < 0 {
		return fmt.Errorf("invalid default duration %dh%02dm: %w",
			s.Hours, s.Minutes, timeslot.ErrInvalidDuration)
	}
	_, err := s.location()
	return err
}

func (s *Settings) location() (*time.Location, error) {
	if s.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location `%s': %w", s.Location, err)
	}
	return loc, nil
}

// TimeslotConfig returns the timeslot.Config matching s.
func (s *Settings) TimeslotConfig() (*timeslot.Config, error) {
	loc, err := s.location()
	if err != nil {
		return nil, err
	}
	return &timeslot.Config{
		Location: loc,
		Layouts:  s.Layouts,
	}, nil
}
