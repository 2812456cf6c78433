// Package whiskers provides Tukey-fence outlier detection for Go with a
// scikit-learn-compatible fit/transform API.
//
// A WhiskerOutliers estimator learns per-column fences from a reference
// dataset (values below Q1 - threshold*IQR or above Q3 + threshold*IQR
// are outliers) and then masks, flags, or passes through values in any
// dataset with the same columns.
//
// # Features
//
// - Per-column quartile fences with linear rank interpolation
// - NaN-aware: missing values are skipped when fitting and never flagged
// - Shape-preserving: vectors, named series and tables keep their labels
// - Four output modes from two switches (mask to NaN, append indicators)
// - Structured errors with stack traces, sklearn-style warning hook
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/whiskers/dataset"
//	    "github.com/YuminosukeSato/whiskers/outliers"
//	)
//
//	func main() {
//	    X := dataset.NewVector([]float64{1, 2, 3, 4, 5, 6, 100})
//
//	    det := outliers.NewWhiskerOutliers(
//	        outliers.WithThreshold(1.5),
//	        outliers.WithAddIndicator(true),
//	    )
//	    out, err := det.FitTransform(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(out) // 100 masked to NaN, indicator column appended
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - outliers: the WhiskerOutliers estimator
//   - dataset: Vector, Series and Table containers with shape-preserving
//     transforms and a gonum/mat bridge
//   - core/model: estimator state and interfaces
//   - pkg/errors: error and warning types
//   - pkg/log: structured logging helpers
//
// See the examples directory for runnable programs, including box-plot
// rendering of the fitted fences and YAML-configured detectors.
package whiskers
