package step

import (
	"context"

	"github.com/flarebyte/builder/internal/basics"
)

func greetRunner(ctx context.Context, in Report, deps Deps) (Report, error) {
	name := inputs(in.Meta).Name
	return in.withLine(Line{Step: "greet", Text: basics.Greet(name), Value: name}), nil
}

func addRunner(ctx context.Context, in Report, deps Deps) (Report, error) {
	in2 := inputs(in.Meta)
	sum := basics.Add(in2.A, in2.B)
	return in.withLine(Line{Step: "add", Text: basics.FormatSum(in2.A, in2.B), Value: sum}), nil
}

func init() {
	Register("greet", greetRunner)
	Register("add", addRunner)
}
