// Package main contains the application wiring and the AppManager which runs
// the render loop and owns the session clock.
//
// Maintenance notes / tips:
//   - Concurrency model: exactly two goroutines. The input listener (see
//     package input) only sets bits on the shared control.State. The render
//     loop (`run`) is the only goroutine that reads the clock, writes to the
//     terminal and consumes split requests. No mutex is taken anywhere.
//   - Listener errors travel on `listenErr` (buffered, size 1) and the loop
//     checks it once per tick. `listenDone` is closed when the listener
//     returns and is what the loop joins on at shutdown.
//   - Split exhaustion ends the run without joining the listener: the
//     listener only stops on its own 'q', and the process exits right after.
package main

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"SplitTimer/control"
	"SplitTimer/i18n"
	"SplitTimer/input"
	"SplitTimer/terminal"
	"SplitTimer/timer"
)

// Outcome reports how a run ended successfully.
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeExhausted
)

func (o Outcome) String() string {
	if o == OutcomeExhausted {
		return "exhausted"
	}
	return "quit"
}

// Sounder plays the split chime.
type Sounder interface {
	Play()
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	out      io.Writer
	clock    timer.Clock
	state    *control.State
	listener *input.Listener
	chime    Sounder
	log      *zap.Logger

	tick  time.Duration
	sleep func(time.Duration)

	listenErr  chan error
	listenDone chan struct{}
}

// AppConfig groups the AppManager dependencies.
type AppConfig struct {
	Out          io.Writer
	In           input.Source
	Clock        timer.Clock
	Chime        Sounder // optional
	Log          *zap.Logger
	TickInterval time.Duration
	PollInterval time.Duration
}

// NewAppManager creates a new application manager with a fresh command state.
// Zero intervals fall back to the timer defaults and a nil logger discards.
func NewAppManager(cfg AppConfig) *AppManager {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = timer.DefaultTickInterval
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = timer.DefaultPollInterval
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	state := &control.State{}
	return &AppManager{
		out:        cfg.Out,
		clock:      cfg.Clock,
		state:      state,
		listener:   input.NewListener(cfg.In, state, cfg.PollInterval, cfg.Log),
		chime:      cfg.Chime,
		log:        cfg.Log,
		tick:       cfg.TickInterval,
		sleep:      time.Sleep,
		listenErr:  make(chan error, 1),
		listenDone: make(chan struct{}),
	}
}

// Run starts the session clock and the listener, then renders until quit or
// until the split budget is spent.
func (a *AppManager) Run() (Outcome, error) {
	session, err := timer.NewSession(a.clock)
	if err != nil {
		return OutcomeQuit, err
	}

	go a.listen()

	return a.run(session)
}

func (a *AppManager) listen() {
	defer close(a.listenDone)
	if err := a.listener.Run(); err != nil {
		a.listenErr <- err
	}
}

func (a *AppManager) run(session *timer.Session) (Outcome, error) {
	for !a.state.Load().QuitRequested() {
		select {
		case err := <-a.listenErr:
			return OutcomeQuit, fmt.Errorf("input listener: %w", err)
		default:
		}

		now, err := session.Now()
		if err != nil {
			return OutcomeQuit, err
		}
		split, total := session.Elapsed(now)

		snap := a.state.Load()
		if err := renderStatus(a.out, snap.SplitIndex(), split, total); err != nil {
			return OutcomeQuit, fmt.Errorf("write status: %w", err)
		}

		if snap.SplitRequested() {
			idx, ok := a.state.AdvanceSplit()
			if !ok {
				fmt.Fprintf(a.out, "\n %s \n", i18n.T("No more splits available."))
				a.log.Debug("split budget exhausted", zap.Int("index", idx))
				return OutcomeExhausted, nil
			}
			session.StartSplit(now)
			fmt.Fprint(a.out, "\n")
			a.log.Debug("split", zap.Int("index", idx), zap.Duration("previous", split))
			if a.chime != nil {
				a.chime.Play()
			}
		}

		a.sleep(a.tick)
	}

	<-a.listenDone
	fmt.Fprint(a.out, "\n")
	return OutcomeQuit, nil
}

// renderStatus overwrites the current line with the split and session times.
// index is zero-based; the line shows it one-based.
func renderStatus(w io.Writer, index int, split, total time.Duration) error {
	if err := terminal.ClearLine(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %d: %s | %s %s",
		i18n.T("Split"), index+1,
		timer.FormatTime(split), timer.FormatTime(total),
		i18n.T("since start"))
	return err
}
