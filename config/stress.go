package config

import (
	"fmt"
	"strings"
)

// Level selects how hard replay stress runs push the garbage collector.
type Level string

const (
	LevelOff        Level = "off"
	LevelNormal     Level = "normal"
	LevelAggressive Level = "aggressive"
)

// Stress controls replay stress scheduling. Zero Iterations or GCEvery mean
// "use the level's default".
type Stress struct {
	Level      Level `env:"LXMSEQ_STRESS" envDefault:"normal"`
	Iterations int   `env:"LXMSEQ_STRESS_ITERATIONS"`
	GCEvery    int   `env:"LXMSEQ_GC_EVERY"`
	AllocBytes int   `env:"LXMSEQ_ALLOC_BYTES"`
}

var levelDefaults = map[Level]Stress{
	LevelOff:        {Iterations: 1000, GCEvery: 0, AllocBytes: 0},
	LevelNormal:     {Iterations: 1000000, GCEvery: 10000, AllocBytes: 256},
	LevelAggressive: {Iterations: 1000000, GCEvery: 100, AllocBytes: 4096},
}

// DefaultStress returns the settings of LevelNormal.
func DefaultStress() Stress {
	s := levelDefaults[LevelNormal]
	s.Level = LevelNormal
	return s
}

// LoadStress reads Stress from the environment and fills unset fields from
// the level defaults.
func LoadStress() (Stress, error) {
	var s Stress
	if err := ParseEnv(&s); err != nil {
		return Stress{}, err
	}
	s.Level = Level(strings.ToLower(string(s.Level)))
	def, ok := levelDefaults[s.Level]
	if !ok {
		return Stress{}, fmt.Errorf("unknown LXMSEQ_STRESS level %q", s.Level)
	}
	if s.Iterations <= 0 {
		s.Iterations = def.Iterations
	}
	if s.GCEvery <= 0 {
		s.GCEvery = def.GCEvery
	}
	if s.AllocBytes <= 0 {
		s.AllocBytes = def.AllocBytes
	}
	return s, nil
}

// Enabled reports whether long stress runs should be scheduled.
func (s Stress) Enabled() bool {
	return s.Level != LevelOff
}
