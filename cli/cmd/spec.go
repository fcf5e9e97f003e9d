package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/DiscreteTom/clonesure/lang"
	"github.com/DiscreteTom/clonesure/log"
	"github.com/DiscreteTom/clonesure/pkg"
)

// Spec parses one closure literal and dumps its structured form.
type Spec struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format."                    short:"f"`
	Expand bool   `                                help:"Include the generated expansion."  short:"x"`

	Source string `arg:"" optional:"" help:"Closure literal (reads stdin when omitted)." name:"closure"`
}

// captureReport is the serialized form of one capture entry.
type captureReport struct {
	Name    string `json:"name"    yaml:"name"`
	Mutable bool   `json:"mutable" yaml:"mutable"`
}

// specReport is the serialized form of a parsed closure.
type specReport struct {
	ExplicitMove bool            `json:"explicit_move"         yaml:"explicit_move"`
	Captures     []captureReport `json:"captures"              yaml:"captures"`
	Params       []string        `json:"params"                yaml:"params"`
	ReturnType   string          `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Body         string          `json:"body"                  yaml:"body"`
	Expansion    string          `json:"expansion,omitempty"   yaml:"expansion,omitempty"`
}

// Run executes the spec command.
func (s *Spec) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source := s.Source
	if source == "" {
		source, err = readSource(stdinSource)
		if err != nil {
			return err
		}
	}

	spec, err := lang.ParseString(ctx, strings.TrimSpace(source),
		lang.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	report := specReport{
		ExplicitMove: spec.ExplicitMove,
		Captures:     make([]captureReport, len(spec.Captures)),
		Params:       spec.ParamTexts(),
		ReturnType:   spec.ReturnTypeText(),
		Body:         spec.BodyText(),
	}

	for i, capture := range spec.Captures {
		report.Captures[i] = captureReport{
			Name:    capture.Name,
			Mutable: capture.Mutable,
		}
	}

	if s.Expand {
		report.Expansion = lang.Generate(spec, lang.WithIndent(4))
	}

	var out []byte

	switch s.Format {
	case "json":
		out, err = json.MarshalIndent(report, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}

	case "yaml":
		out, err = yaml.Marshal(report)

	default:
		return fmt.Errorf("%w: %q (valid: yaml, json)", pkg.ErrInvalidFormat, s.Format)
	}

	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", pkg.ErrWriteOutput, err)
	}

	return nil
}
