package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/maxatome/go-timeslot"
)

// errOutside is returned by the "has" action when the instant is not
// in the slot. main exits with status 2 without any message.
var errOutside = errors.New("instant is outside the slot")

// An Action can be typically called by main to do a job.
type Action interface {
	// Params describes the parameters of this Action.
	Params() string

	// Doc is the one line description of this Action.
	Doc() string

	// Do executes the action.
	Do(pOptions *Options, params []string) error
}

var actions = map[string]Action{
	"now":     &nowAction{},
	"create":  &createAction{},
	"after":   &chainAction{},
	"before":  &chainAction{before: true},
	"has":     &hasAction{},
	"layouts": &layoutsAction{},
}

// slotAction is embedded by actions working on a slot given as
// START [HOURS [MINUTES]].
type slotAction struct{}

func (a *slotAction) Params() string {
	return "START [HOURS [MINUTES]]"
}

// parseSlot builds the slot described by params. START can be "now"
// for the current instant. HOURS and MINUTES default to the
// configured duration, MINUTES to 0 as soon as HOURS is given.
func (a *slotAction) parseSlot(pOptions *Options, params []string) (timeslot.Timeslot, error) {
	if len(params) == 0 {
		return timeslot.Timeslot{}, errors.New("START is missing")
	}
	if len(params) > 3 {
		return timeslot.Timeslot{}, fmt.Errorf("too many params: %q", params[3:])
	}

	hours, minutes := pOptions.settings.Hours, pOptions.settings.Minutes
	if len(params) > 1 {
		var err error
		hours, err = strconv.Atoi(params[1])
		if err != nil {
			return timeslot.Timeslot{}, fmt.Errorf("invalid HOURS `%s'", params[1])
		}

		minutes = 0
		if len(params) > 2 {
			minutes, err = strconv.Atoi(params[2])
			if err != nil {
				return timeslot.Timeslot{}, fmt.Errorf("invalid MINUTES `%s'", params[2])
			}
		}
	}

	var start any
	if params[0] != "now" {
		start = params[0]
	}

	ts, err := pOptions.tsConfig.New(start, hours, minutes)
	if err != nil {
		return timeslot.Timeslot{}, err
	}
	if pOptions.round {
		ts = ts.Round()
	}

	pOptions.logger.Debug().
		Str("start", params[0]).
		Int("hours", hours).
		Int("minutes", minutes).
		Bool("round", pOptions.round).
		Stringer("slot", ts).
		Msg("slot built")

	return ts, nil
}

// nowAction implements the "now" action.
type nowAction struct{}

func (a *nowAction) Params() string {
	return ""
}

func (a *nowAction) Doc() string {
	return "print the one hour slot of the current clock hour"
}

func (a *nowAction) Do(pOptions *Options, params []string) error {
	if len(params) != 0 {
		return fmt.Errorf("`now' action takes no params, not %q", params)
	}
	return pOptions.print(pOptions.tsConfig.Now())
}

// createAction implements the "create" action.
type createAction struct {
	slotAction
}

func (a *createAction) Doc() string {
	return "print the slot starting at START (rounded with --round)"
}

func (a *createAction) Do(pOptions *Options, params []string) error {
	ts, err := a.parseSlot(pOptions, params)
	if err != nil {
		return err
	}
	return pOptions.print(ts)
}

// chainAction implements the "after" and "before" actions.
type chainAction struct {
	slotAction
	before bool
}

func (a *chainAction) Doc() string {
	if a.before {
		return "print the --count slots preceding the given one, nearest first"
	}
	return "print the --count slots following the given one"
}

func (a *chainAction) Do(pOptions *Options, params []string) error {
	if pOptions.count < 1 {
		return fmt.Errorf("--count must be at least 1, not %d", pOptions.count)
	}

	ts, err := a.parseSlot(pOptions, params)
	if err != nil {
		return err
	}

	pOptions.logger.Info().
		Bool("before", a.before).
		Int("count", pOptions.count).
		Msg("chaining slots")

	for i := 0; i < pOptions.count; i++ {
		if a.before {
			ts = timeslot.Before(ts)
		} else {
			ts = timeslot.After(ts)
		}

		err = pOptions.print(ts)
		if err != nil {
			return err
		}
	}
	return nil
}

// hasAction implements the "has" action.
type hasAction struct {
	slotAction
}

func (a *hasAction) Params() string {
	return "START [HOURS [MINUTES]] INSTANT"
}

func (a *hasAction) Doc() string {
	return "tell whether INSTANT is in the slot, exit status 2 if not"
}

func (a *hasAction) Do(pOptions *Options, params []string) error {
	if len(params) < 2 {
		return errors.New("START and INSTANT are mandatory")
	}

	last := len(params) - 1
	ts, err := a.parseSlot(pOptions, params[:last])
	if err != nil {
		return err
	}

	var instant timeslot.Time
	if params[last] == "now" {
		instant = timeslot.Time(pOptions.tsConfig.Current())
	} else {
		instant, err = pOptions.tsConfig.ParseTime(params[last])
		if err != nil {
			return fmt.Errorf("invalid INSTANT: %w", err)
		}
	}

	in := ts.Has(time.Time(instant))

	if pOptions.jsonOutput {
		buf, err := json.Marshal(map[string]any{
			"slot":    ts,
			"instant": instant,
			"has":     in,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(pOptions.out, string(buf))
	} else {
		fmt.Fprintln(pOptions.out, in)
	}

	if !in {
		return errOutside
	}
	return nil
}

// layoutsAction implements the "layouts" action.
type layoutsAction struct{}

func (a *layoutsAction) Params() string {
	return ""
}

func (a *layoutsAction) Doc() string {
	return "list the layouts accepted for START and INSTANT"
}

func (a *layoutsAction) Do(pOptions *Options, params []string) error {
	layouts := pOptions.tsConfig.Layouts
	if len(layouts) == 0 {
		layouts = timeslot.Layouts
	}

	for _, layout := range layouts {
		fmt.Fprintln(pOptions.out, layout)
	}
	return nil
}
