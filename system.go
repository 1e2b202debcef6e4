package kvantuma

import (
	"time"

	"go.uber.org/zap"
)

// System is one unit of frame logic run against the world.
type System interface {
	Execute(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

// Execute calls f.
func (f SystemFunc) Execute(w *World) {
	f(w)
}

// Schedule runs systems in registration order, synchronously and to
// completion. The engine drives one schedule per frame phase (update,
// render); the store itself never parallelizes them.
type Schedule struct {
	systems []System
	names   []string
	log     *zap.Logger
}

// NewSchedule creates an empty schedule. The default logger discards
// everything.
func NewSchedule(opts ...ScheduleOption) *Schedule {
	s := &Schedule{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScheduleOption configures a Schedule.
type ScheduleOption func(*Schedule)

// WithScheduleLogger attaches a structured logger.
func WithScheduleLogger(log *zap.Logger) ScheduleOption {
	return func(s *Schedule) {
		s.log = log
	}
}

// Add appends a named system and returns the schedule for chaining.
func (s *Schedule) Add(name string, sys System) *Schedule {
	s.systems = append(s.systems, sys)
	s.names = append(s.names, name)
	return s
}

// Len returns the number of registered systems.
func (s *Schedule) Len() int {
	return len(s.systems)
}

// Run executes every system once, in registration order.
func (s *Schedule) Run(w *World) {
	timed := s.log.Core().Enabled(zap.DebugLevel)
	for i, sys := range s.systems {
		if !timed {
			sys.Execute(w)
			continue
		}
		start := time.Now()
		sys.Execute(w)
		s.log.Debug("system executed",
			zap.String("system", s.names[i]),
			zap.Duration("took", time.Since(start)),
		)
	}
}
