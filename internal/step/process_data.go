package step

import (
	"context"

	"github.com/flarebyte/builder/internal/basics"
)

const processDataStep = "process-data"

// ProcessData aggregates the configured sequence, through the Lua reducer
// when one is configured.
func ProcessData(ctx context.Context, in InputsMeta) (int, error) {
	if in.ReduceInline != "" {
		return runLuaReduce(ctx, in.ReduceInline, in.Data)
	}
	return basics.Aggregate(in.Aggregate, in.Data)
}

func processDataRunner(ctx context.Context, in Report, deps Deps) (Report, error) {
	result, err := ProcessData(ctx, inputs(in.Meta))
	if err != nil {
		return Report{}, err
	}
	return in.withLine(Line{Step: processDataStep, Text: basics.FormatProcessed(result), Value: result}), nil
}

func init() { Register(processDataStep, processDataRunner) }
