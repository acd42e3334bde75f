package basics

import (
	"fmt"
	"strings"
)

// Aggregate kinds understood by Aggregate.
const (
	AggregateSum     = "sum"
	AggregateProduct = "product"
	AggregateCount   = "count"
	AggregateMin     = "min"
	AggregateMax     = "max"
)

// DefaultData is the sequence processed when none is configured.
var DefaultData = []int{1, 2, 3, 4, 5}

var aggregateKinds = []string{AggregateSum, AggregateProduct, AggregateCount, AggregateMin, AggregateMax}

// ProcessData sums values. An empty sequence yields 0.
func ProcessData(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// IsAggregateKind reports whether kind names a known aggregate.
func IsAggregateKind(kind string) bool {
	for _, k := range aggregateKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// AggregateKindsCSV lists the known aggregates for error messages.
func AggregateKindsCSV() string {
	return strings.Join(aggregateKinds, ", ")
}

// Aggregate reduces values with the named aggregate. An empty kind means sum.
// Empty input yields the identity: 0 for sum and count, 1 for product, and 0
// for min and max, which have none.
func Aggregate(kind string, values []int) (int, error) {
	switch kind {
	case "", AggregateSum:
		return ProcessData(values), nil
	case AggregateProduct:
		acc := 1
		for _, v := range values {
			acc *= v
		}
		return acc, nil
	case AggregateCount:
		return len(values), nil
	case AggregateMin, AggregateMax:
		if len(values) == 0 {
			return 0, nil
		}
		acc := values[0]
		for _, v := range values[1:] {
			if (kind == AggregateMin && v < acc) || (kind == AggregateMax && v > acc) {
				acc = v
			}
		}
		return acc, nil
	default:
		return 0, fmt.Errorf("unknown aggregate: %s", kind)
	}
}

// FormatProcessed renders an aggregate result line.
func FormatProcessed(result int) string {
	return fmt.Sprintf("Processed data: %d", result)
}
