package rich

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"unicode/utf8"
)

var validate = flag.Bool("validateruns", false, "Check that the run model is valid after every edit")

// Validate reports whether p satisfies the run invariants.
func (p *Paragraph) Validate() error {
	if len(p.Runs) == 0 {
		return errors.New("paragraph has no runs")
	}
	for i, r := range p.Runs {
		if r.Text == "" && len(p.Runs) > 1 {
			return fmt.Errorf("run %d is empty in a paragraph of %d runs", i, len(p.Runs))
		}
		if !utf8.ValidString(r.Text) {
			return fmt.Errorf("run %d is not valid UTF-8", i)
		}
	}
	return nil
}

func (p *Paragraph) validate(op string) {
	if !*validate {
		return
	}
	if err := p.Validate(); err != nil {
		log.Printf("rich.%s: %v: %q", op, err, p.Runs)
		panic("-- invalid run model after " + op + " --")
	}
}
