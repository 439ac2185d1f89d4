package core

import (
	"fmt"
	"math"
)

// Metric selects the distance function used for vector similarity.
type Metric string

const (
	// MetricCosine is cosine distance: 1 - cos(a, b), in [0, 2], 0 = identical.
	MetricCosine Metric = "cosine"
	// MetricEuclidean is L2 distance.
	MetricEuclidean Metric = "euclidean"
	// MetricInnerProduct is the negated dot product.
	MetricInnerProduct Metric = "inner_product"
)

// ValidateMetric validates that a Metric is one of the supported values.
func ValidateMetric(metric Metric) error {
	switch metric {
	case MetricCosine, MetricEuclidean, MetricInnerProduct:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedMetric, metric)
}

// Distance computes the distance between two vectors under the given metric.
// Smaller distance always means more similar, for every supported metric.
// Vectors must have the same dimension.
func Distance(a, b []float32, metric Metric) (float32, error) {
	if err := ValidateMetric(metric); err != nil {
		return 0, err
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrVectorLengthMismatch, len(a), len(b))
	}

	switch metric {
	case MetricEuclidean:
		var sum float32
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}
		return float32(math.Sqrt(float64(sum))), nil

	case MetricInnerProduct:
		return -dotProduct(a, b), nil

	default: // MetricCosine
		dot := dotProduct(a, b)
		normA := magnitude(a)
		normB := magnitude(b)
		if normA == 0 || normB == 0 {
			// A zero vector has no direction; treat it as maximally distant.
			return 2, nil
		}
		return 1 - dot/(normA*normB), nil
	}
}

// DisplayScore converts a raw distance into a higher-is-better score for
// caller-facing output: 1 - distance for cosine, negated distance otherwise.
func DisplayScore(distance float32, metric Metric) float64 {
	if metric == MetricCosine {
		return float64(1 - distance)
	}
	return float64(-distance)
}

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	mag := magnitude(v)

	// Can't normalize zero vector
	if mag == 0 {
		result := make([]float32, len(v))
		return result
	}

	result := make([]float32, len(v))
	for i, val := range v {
		result[i] = val / mag
	}
	return result
}

// dotProduct calculates the dot product of two equal-length vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// magnitude calculates the L2 norm of a vector.
func magnitude(v []float32) float32 {
	var sum float32
	for _, val := range v {
		sum += val * val
	}
	return float32(math.Sqrt(float64(sum)))
}
