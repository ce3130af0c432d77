package prompts

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Fallback opens the reply used when no canned response matches.
const Fallback = "I'm not sure about that. Here's what I can help with right now:"

// Response is one canned reply and the phrase it answers.
type Response struct {
	Key   string `yaml:"key"`
	Reply string `yaml:"reply"`
}

//go:embed responses.yaml
var rawResponses []byte

var responses = mustParseResponses(rawResponses)

func mustParseResponses(data []byte) []Response {
	var list []Response
	if err := yaml.Unmarshal(data, &list); err != nil {
		panic(fmt.Sprintf("prompts: parsing embedded responses: %v", err))
	}
	for i, r := range list {
		if r.Key == "" || r.Reply == "" {
			panic(fmt.Sprintf("prompts: response %d is incomplete", i))
		}
	}
	return list
}

// Responses returns the canned response table in declaration order.
func Responses() []Response {
	return append([]Response(nil), responses...)
}
