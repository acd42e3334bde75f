package step

import "github.com/flarebyte/builder/internal/basics"

func defaultInputs() InputsMeta {
	return InputsMeta{
		Name:      basics.DefaultName,
		A:         basics.DefaultA,
		B:         basics.DefaultB,
		Data:      append([]int(nil), basics.DefaultData...),
		Aggregate: basics.AggregateSum,
	}
}
