// Package model は推定器の基底となる状態管理とインターフェースを提供する
package model

// EstimatorState は推定器の学習状態を表す
type EstimatorState int

const (
	// NotFitted は推定器が未学習の状態
	NotFitted EstimatorState = iota
	// Fitted は推定器が学習済みの状態
	Fitted
)

// BaseEstimator は全ての推定器の基底となる構造体
//
// 学習状態はFitの成功時に一度だけ書き込まれ、以降のTransform/Predictは
// 読み取りのみを行う。単一の書き込み側を前提としており、内部ロックは持たない。
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は推定器が学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は推定器を学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は推定器を初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
