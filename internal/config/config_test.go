package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxatome/go-testdeep/td"

	"github.com/maxatome/go-timeslot"
)

func writeFile(t *td.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	t.FailureIsFatal().CmpNoError(os.WriteFile(file, []byte(content), 0o600))
	return file
}

func clearEnv(tt *testing.T) {
	for _, env := range []string{EnvLocation, EnvHours, EnvMinutes, EnvLayouts} {
		tt.Setenv(env, "")
	}
}

func TestLoadDefaults(tt *testing.T) {
	t := td.NewT(tt)

	clearEnv(tt)
	tt.Setenv("HOME", tt.TempDir())

	s, err := Load("", "")
	if t.CmpNoError(err) {
		t.Cmp(s, Default())
		t.Cmp(s, &Settings{Hours: 1, Minutes: 0})
	}
}

func TestLoad(tt *testing.T) {
	t := td.NewT(tt)

	clearEnv(tt)
	dir := tt.TempDir()

	file := writeFile(t, dir, "timeslot.yaml", `
location: Europe/Paris
hours: 2
minutes: 30
layouts:
  - 02/01/2006 15:04
`)
	envFile := writeFile(t, dir, "timeslot.env", `
TIMESLOT_MINUTES=45
TIMESLOT_LOCATION=UTC
`)

	// YAML only
	s, err := Load(file, writeFile(t, dir, "empty.env", ""))
	if t.CmpNoError(err) {
		t.Cmp(s, &Settings{
			Location: "Europe/Paris",
			Hours:    2,
			Minutes:  30,
			Layouts:  []string{"02/01/2006 15:04"},
		})
	}

	// dotenv overrides YAML
	s, err = Load(file, envFile)
	if t.CmpNoError(err) {
		t.Cmp(s, &Settings{
			Location: "UTC",
			Hours:    2,
			Minutes:  45,
			Layouts:  []string{"02/01/2006 15:04"},
		})
	}

	// environment overrides dotenv
	tt.Setenv(EnvMinutes, "5")
	tt.Setenv(EnvHours, "0")
	tt.Setenv(EnvLayouts, "2006-01-02 15:04,15:04 02/01/2006")
	s, err = Load(file, envFile)
	if t.CmpNoError(err) {
		t.Cmp(s, &Settings{
			Location: "UTC",
			Hours:    0,
			Minutes:  5,
			Layouts:  []string{"2006-01-02 15:04", "15:04 02/01/2006"},
		})
	}
}

func TestLoadErrors(tt *testing.T) {
	t := td.NewT(tt)

	clearEnv(tt)
	dir := tt.TempDir()
	noEnv := writeFile(t, dir, "empty.env", "")

	// Explicit files must exist
	_, err := Load(filepath.Join(dir, "missing.yaml"), noEnv)
	t.CmpError(err)
	_, err = Load(writeFile(t, dir, "empty.yaml", ""), filepath.Join(dir, "missing.env"))
	t.CmpError(err)

	_, err = Load(writeFile(t, dir, "bad.yaml", "hours: [1]"), noEnv)
	t.Cmp(err, td.Smuggle(func(err error) string { return err.Error() },
		td.HasPrefix("invalid config file `")))

	_, err = Load(writeFile(t, dir, "neg.yaml", "minutes: -1"), noEnv)
	t.CmpErrorIs(err, timeslot.ErrInvalidDuration)

	_, err = Load(writeFile(t, dir, "loc.yaml", "location: Nowhere/Atlantis"), noEnv)
	t.CmpError(err)

	unsafe := writeFile(t, dir, "unsafe.yaml", "hours: 2")
	t.FailureIsFatal().CmpNoError(os.Chmod(unsafe, 0o644))
	_, err = Load(unsafe, noEnv)
	t.CmpErrorIs(err, ErrUnsafeFile)

	t.FailureIsFatal().CmpNoError(os.Chmod(unsafe, 0o640))
	s, err := Load(unsafe, noEnv)
	if t.CmpNoError(err) {
		t.Cmp(s.Hours, 2)
	}

	tt.Setenv(EnvHours, "two")
	_, err = Load(writeFile(t, dir, "ok.yaml", ""), noEnv)
	t.CmpError(err)
}

func TestTimeslotConfig(tt *testing.T) {
	t := td.NewT(tt)

	s := &Settings{Location: "UTC", Layouts: []string{"2006-01-02 15h04"}}
	cfg, err := s.TimeslotConfig()
	if t.CmpNoError(err) {
		t.True(cfg.Location == time.UTC)
		t.Cmp(cfg.Layouts, []string{"2006-01-02 15h04"})

		ts, err := cfg.Parse("2024-01-01 10h15", 1, 0)
		if t.CmpNoError(err) {
			t.Cmp(ts.String(), "2024-01-01 10:15:00 - 2024-01-01 11:14:59")
		}
	}

	cfg, err = Default().TimeslotConfig()
	if t.CmpNoError(err) {
		t.True(cfg.Location == time.Local)
		t.Nil(cfg.Layouts)
	}

	_, err = (&Settings{Location: "Nowhere/Atlantis"}).TimeslotConfig()
	t.CmpError(err)
}
