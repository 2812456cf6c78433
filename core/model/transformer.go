package model

import "github.com/YuminosukeSato/whiskers/dataset"

// Transformer はデータ変換のインターフェース
//
// 入力と出力は同じ形状ファミリー（Vector/Series/Table）を保ち、
// ラベル付きコンテナは名前とインデックスを保持する。
type Transformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(X dataset.Dataset) error

	// Transform はデータを変換する
	Transform(X dataset.Dataset) (dataset.Dataset, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X dataset.Dataset) (dataset.Dataset, error)
}

// OutlierDetector は外れ値検出器のインターフェース
//
// scikit-learnのOutlierMixinに対応し、PredictはTransformの別名となる。
type OutlierDetector interface {
	Transformer

	// Predict はTransformの別名
	Predict(X dataset.Dataset) (dataset.Dataset, error)

	// FitPredict はFitTransformの別名
	FitPredict(X dataset.Dataset) (dataset.Dataset, error)
}
