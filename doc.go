// Package classbreaks computes one-dimensional classification breaks:
// it partitions a sample of real values into ordered, contiguous classes,
// the way thematic maps (choropleths) bin a variable into colour ramps.
//
// A classification is built once from a sample, a class count and a
// Method, and can then be queried for the class of any value:
//
//	res, err := classbreaks.New(5, values, classbreaks.MethodNaturalBreaks)
//	// res.Bounds holds ClassCount+1 ascending break values,
//	// res.Bounds[0] == min(values), res.Bounds[res.ClassCount] == max(values).
//	class, ok := res.ClassIndex(42.0)
//	// ok is false when 42.0 lies outside [min, max].
//
// Methods are parsed from their names with ParseMethod:
//
//	m, err := classbreaks.ParseMethod("Quantiles")
//
// # Methods
//
// MethodEqualInterval divides [min, max] into equal-width classes.
// MethodQuantiles puts roughly the same number of values in each class.
// MethodArithmetic grows class widths arithmetically (1w, 2w, 3w, ...).
// MethodHeadTail and MethodTailHead split recursively around the mean and
// choose their own class count; read Result.ClassCount for the outcome.
// MethodNaturalBreaks (Jenks optimization) minimises the total within-class
// sum of squared deviations with an O(n²·k) dynamic program.
//
// # Pre-sorted input
//
// Callers that already hold a sorted sample can skip validation and call
// the break functions directly:
//
//	bounds := classbreaks.NaturalBreaks(sorted, 5)
//
// New never reorders the caller's slice; it sorts a private copy. All
// functions are generic over float32 and float64.
package classbreaks
