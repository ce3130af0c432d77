// Package steps holds the per-step configuration of the four-stage
// authoring workflow.
package steps

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ID is a workflow stage, 1 through 4.
type ID int

const (
	Setup ID = iota + 1
	AddContent
	Edit
	Share
)

// First and Last bound the valid step range.
const (
	First = Setup
	Last  = Share
)

// Valid reports whether id is inside the workflow.
func (id ID) Valid() bool {
	return id >= First && id <= Last
}

// Config is the static configuration of one step.
type Config struct {
	ID                ID       `yaml:"id"`
	Context           string   `yaml:"context"`
	Greeting          string   `yaml:"greeting"`
	FirstTimeGreeting string   `yaml:"first_time_greeting,omitempty"`
	Tips              []string `yaml:"tips"`
	QuickReplies      []string `yaml:"quick_replies"`
}

//go:embed steps.yaml
var raw []byte

var table = mustParse(raw)

func mustParse(data []byte) map[ID]Config {
	var list []Config
	if err := yaml.Unmarshal(data, &list); err != nil {
		panic(fmt.Sprintf("steps: parsing embedded table: %v", err))
	}
	out := make(map[ID]Config, len(list))
	for _, c := range list {
		if !c.ID.Valid() {
			panic(fmt.Sprintf("steps: invalid step id %d", c.ID))
		}
		out[c.ID] = c
	}
	for id := First; id <= Last; id++ {
		if _, ok := out[id]; !ok {
			panic(fmt.Sprintf("steps: missing configuration for step %d", id))
		}
	}
	return out
}

// Get returns the configuration of id. Out-of-range ids fall back to the
// first step so callers always get a usable table entry.
func Get(id ID) Config {
	if c, ok := table[id]; ok {
		return c
	}
	return table[First]
}

// QuickReplies returns the step's quick-reply prompts in their configured order.
func QuickReplies(id ID) []string {
	return append([]string(nil), Get(id).QuickReplies...)
}
