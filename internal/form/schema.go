// Package form loads HCL-defined questionnaires and translates each
// question into an ask.Question ready to run against a console.
package form

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/fw/askline/ask"
	"github.com/zclconf/go-cty/cty"
)

// questionBlock is the HCL shape of a single `question` block. The type
// attribute stays an expression so `number` or `list(string)` can be
// interpreted as a type keyword rather than evaluated as a variable.
type questionBlock struct {
	Name           string         `hcl:"name,label"`
	Type           hcl.Expression `hcl:"type"`
	Message        string         `hcl:"message,optional"`
	ParseError     string         `hcl:"parse_error,optional"`
	ConditionError string         `hcl:"condition_error,optional"`
	Min            *float64       `hcl:"min,optional"`
	Max            *float64       `hcl:"max,optional"`
	Choices        []string       `hcl:"choices,optional"`
	Required       bool           `hcl:"required,optional"`
	Count          *int           `hcl:"count,optional"`
}

// formBlock is the HCL shape of a `form` block: a named, ordered list of
// questions.
type formBlock struct {
	Name      string           `hcl:"name,label"`
	Questions []*questionBlock `hcl:"question,block"`
}

// fileRoot decodes the top-level blocks of one form file.
type fileRoot struct {
	Forms  []*formBlock `hcl:"form,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// Form is the loaded, translated questionnaire.
type Form struct {
	Name      string
	Questions []*Question
}

// Question pairs a question's name with the prompt request that asks it.
type Question struct {
	Name   string
	Type   cty.Type
	Prompt ask.Question
}
