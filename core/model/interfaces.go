// Package model provides additional interfaces for estimator introspection.
// This file complements the state tracking in base.go and the transformer
// contracts in transformer.go
package model

// ParameterGetter is the interface for estimators that expose their parameters.
//
// GetParams must report every constructor parameter needed to rebuild an
// equivalent unfitted instance, so that cloning and cross-validation
// frameworks reproduce identical behavior.
type ParameterGetter interface {
	// GetParams returns the estimator's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for estimators that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the estimator's hyperparameters.
	SetParams(params map[string]interface{}) error
}

// SKLearnCompatible combines the introspection surface expected by a
// surrounding estimator framework.
type SKLearnCompatible interface {
	ParameterGetter
	ParameterSetter
}
