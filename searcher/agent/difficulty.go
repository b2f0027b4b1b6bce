package agent

import "fmt"

// Difficulty is a tier of automated play.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Policy tunes move selection: how deep to search and how often to play a
// random move instead.
type Policy struct {
	Depth        int
	RandomChance float64
}

var policies = [...]Policy{
	Easy:   {Depth: 2, RandomChance: 0.6},
	Medium: {Depth: 4, RandomChance: 0.3},
	Hard:   {Depth: 6, RandomChance: 0},
}

var names = [...]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

// Difficulties lists every tier from easiest to hardest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Policy returns the tuning of d. Unknown tiers play as Hard.
func (d Difficulty) Policy() Policy {
	if !d.Valid() {
		return policies[Hard]
	}
	return policies[d]
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return names[d]
}

func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range names {
		if name == s {
			return Difficulty(d), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("unknown difficulty %d", int(d))
	}
	return []byte(names[d]), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
