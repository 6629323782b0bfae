package arch

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apperrors "github.com/matzehuels/archviz/pkg/errors"
)

// Target names the generator a config is validated for.
type Target int

const (
	// TargetMarkdown requires model_name and a type on every block.
	TargetMarkdown Target = iota
	// TargetDiagram requires an id on every custom node and both ends of every custom edge.
	TargetDiagram
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetMarkdown:
		return "markdown"
	case TargetDiagram:
		return "diagram"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

var nodeID = validation.By(func(value any) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}
	return apperrors.ValidateNodeID(*p)
})

// Validate checks the fields the target generator cannot do without.
// All problems are reported together; the error code is that of the first.
func Validate(cfg *Config, target Target) error {
	v := &validator{}

	switch target {
	case TargetMarkdown:
		v.check("model_name", cfg.ModelName, validation.NotNil)
		for i, s := range cfg.Stages {
			for j, b := range s.Blocks {
				v.check(fmt.Sprintf("stages[%d].blocks[%d].type", i, j), b.Type, validation.NotNil)
			}
		}
	case TargetDiagram:
		for i, n := range cfg.CustomNodes {
			v.check(fmt.Sprintf("custom_nodes[%d].id", i), n.ID, validation.NotNil, nodeID)
		}
		for i, e := range cfg.CustomEdges {
			v.check(fmt.Sprintf("custom_edges[%d].from", i), e.From, validation.NotNil, nodeID)
			v.check(fmt.Sprintf("custom_edges[%d].to", i), e.To, validation.NotNil, nodeID)
		}
	default:
		return apperrors.New(apperrors.ErrCodeInternal, "unknown validation target %s", target)
	}

	return v.err(target)
}

type validator struct {
	code     apperrors.Code
	problems []string
}

func (v *validator) check(path string, value any, rules ...validation.Rule) {
	err := validation.Validate(value, rules...)
	if err == nil {
		return
	}

	code := apperrors.ErrCodeMissingField
	msg := err.Error()
	if c := apperrors.GetCode(err); c != "" {
		code = c
		msg = apperrors.UserMessage(err)
	}
	if v.code == "" {
		v.code = code
	}
	v.problems = append(v.problems, path+": "+msg)
}

func (v *validator) err(target Target) error {
	if len(v.problems) == 0 {
		return nil
	}
	return apperrors.New(v.code, "%s config: %s", target, strings.Join(v.problems, "; "))
}
