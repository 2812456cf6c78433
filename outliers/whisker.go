// Package outliers はTukeyフェンス法に基づく外れ値検出器を提供する
//
// 学習データの第1四分位数(Q1)と第3四分位数(Q3)から列ごとにフェンスを計算し、
// Q1 - threshold*IQR を下回る値、または Q3 + threshold*IQR を上回る値を
// 外れ値として判定する。デフォルトでは threshold=1.5。
package outliers

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/whiskers/core/model"
	"github.com/YuminosukeSato/whiskers/dataset"
	"github.com/YuminosukeSato/whiskers/pkg/errors"
)

// indicatorSuffix は判定コード列の名前に付加される接尾辞
const indicatorSuffix = "_outlier"

// WhiskerOutliers はscikit-learn互換のTukeyフェンス外れ値検出器
//
// Fitで列ごとのフェンス(Min/Max)を学習し、Transformで入力と同じ形状の
// データセットを返す。出力の内容はMarkNaNとAddIndicatorの組み合わせで決まる:
//
//   - MarkNaN=true,  AddIndicator=false: 外れ値をNaNに置き換えた同形状の出力
//   - MarkNaN=true,  AddIndicator=true:  上記に加えて列ごとの判定コード列を付加
//   - MarkNaN=false, AddIndicator=true:  判定コードのみを同形状で出力
//   - MarkNaN=false, AddIndicator=false: 入力をそのまま返す
type WhiskerOutliers struct {
	model.BaseEstimator

	// Threshold はIQRに乗じるフェンス係数
	// 長さ1で両側対称、長さ2で (下側, 上側) の非対称指定
	Threshold []float64

	// MarkNaN は外れ値をNaNに置き換えるかどうか (デフォルト: true)
	MarkNaN bool

	// AddIndicator は判定コード列を付加するかどうか (デフォルト: false)
	AddIndicator bool

	// Distinct は判定コードの符号化方式 (デフォルト: true)
	//   true:  下側外れ値 -1 / 正常値 0 / 上側外れ値 +1
	//   false: 外れ値 -1 / 正常値 +1 (scikit-learnの外れ値検出器の規約)
	Distinct bool

	// Min は各列の下側フェンス (Q1 - iqr*threshold_low)
	Min []float64

	// Max は各列の上側フェンス (Q3 + iqr*threshold_high)
	Max []float64

	// NFeatures は学習時の列数
	NFeatures int

	// columns は学習時の列名（無名入力の場合はnil）
	columns []string
}

// Option はWhiskerOutliersの設定オプション
type Option func(*WhiskerOutliers)

// WithThreshold はフェンス係数を設定する
// 引数1つで両側対称、2つで (下側, 上側) の非対称指定となる
// それ以外の個数はFit時にConfigurationErrorとなる
func WithThreshold(ts ...float64) Option {
	return func(w *WhiskerOutliers) {
		w.Threshold = ts
	}
}

// WithMarkNaN は外れ値をNaNに置き換えるかどうかを設定する
func WithMarkNaN(markNaN bool) Option {
	return func(w *WhiskerOutliers) {
		w.MarkNaN = markNaN
	}
}

// WithAddIndicator は判定コード列を付加するかどうかを設定する
func WithAddIndicator(addIndicator bool) Option {
	return func(w *WhiskerOutliers) {
		w.AddIndicator = addIndicator
	}
}

// WithDistinct は判定コードの符号化方式を設定する
func WithDistinct(distinct bool) Option {
	return func(w *WhiskerOutliers) {
		w.Distinct = distinct
	}
}

// NewWhiskerOutliers は新しいWhiskerOutliersを作成する
//
// 使用例:
//
//	det := outliers.NewWhiskerOutliers(
//	    outliers.WithThreshold(1.5),
//	    outliers.WithAddIndicator(true),
//	)
//	err := det.Fit(X)
//	out, err := det.Transform(X)
func NewWhiskerOutliers(opts ...Option) *WhiskerOutliers {
	w := &WhiskerOutliers{
		Threshold:    []float64{1.5},
		MarkNaN:      true,
		AddIndicator: false,
		Distinct:     true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewWhiskerOutliersDefault はデフォルト設定でWhiskerOutliersを作成する
func NewWhiskerOutliersDefault() *WhiskerOutliers {
	return NewWhiskerOutliers()
}

// normalizeThreshold はThresholdを (下側係数, 上側係数) に正規化する
func normalizeThreshold(ts []float64) (low, high float64, err error) {
	switch len(ts) {
	case 1:
		return ts[0], ts[0], nil
	case 2:
		return ts[0], ts[1], nil
	default:
		return 0, 0, errors.NewConfigurationError("threshold",
			"threshold must be a number or a 2-element sequence", ts)
	}
}

// Fit は学習データから列ごとのフェンスを計算する
//
// 四分位数は欠損値(NaN)を除外した上で、隣接する順位間の線形補間により
// 計算される。全て欠損値の列はフェンスがNaNとなり、変換時にその列の値が
// 外れ値として判定されることはない（UndefinedBoundsWarningが発生する）。
//
// パラメータ:
//   - X: 学習データ (Vector / Series / Table)
//
// 戻り値:
//   - error: Thresholdが不正な場合はConfigurationError、
//     入力が検証を通らない場合はValidationError
func (w *WhiskerOutliers) Fit(X dataset.Dataset) error {
	tLow, tHigh, err := normalizeThreshold(w.Threshold)
	if err != nil {
		return err
	}
	if err := dataset.Validate("WhiskerOutliers.Fit", X); err != nil {
		return err
	}

	c := X.Cols()
	w.NFeatures = c
	w.columns = fittedColumns(X)
	w.Min = make([]float64, c)
	w.Max = make([]float64, c)

	for j := 0; j < c; j++ {
		col := dataset.Column(X, j)
		q1 := nanQuantile(col, 0.25)
		q3 := nanQuantile(col, 0.75)
		if math.IsNaN(q1) {
			errors.Warn(errors.NewUndefinedBoundsWarning(X.ColumnName(j), j))
		}
		iqr := math.Abs(q3 - q1)
		w.Min[j] = q1 - iqr*tLow
		w.Max[j] = q3 + iqr*tHigh
	}

	w.SetFitted()
	return nil
}

// Transform は学習済みのフェンスを使って入力を変換する
//
// 出力の形状・型・ラベルは入力と同一に保たれる。AddIndicatorが有効な場合、
// 付加される判定コード列の名前は元の列名に "_outlier" を加えたものとなる。
// フェンスがNaNの列ではどの値も外れ値として判定されない。
//
// パラメータ:
//   - X: 変換するデータ。学習時と同じ列数・列名である必要がある
//
// 戻り値:
//   - dataset.Dataset: 変換されたデータセット
//   - error: 未学習の場合はNotFittedError、列数が一致しない場合は
//     DimensionError、入力が検証を通らない場合はValidationError
func (w *WhiskerOutliers) Transform(X dataset.Dataset) (dataset.Dataset, error) {
	if !w.IsFitted() {
		return nil, errors.NewNotFittedError("WhiskerOutliers", "Transform")
	}
	if err := dataset.Validate("WhiskerOutliers.Transform", X); err != nil {
		return nil, err
	}
	if X.Cols() != w.NFeatures {
		return nil, errors.NewDimensionError("WhiskerOutliers.Transform", w.NFeatures, X.Cols(), 1)
	}
	if err := w.checkColumnNames(X); err != nil {
		return nil, err
	}

	switch {
	case w.MarkNaN && !w.AddIndicator:
		return dataset.Map(X, w.mask), nil

	case w.MarkNaN && w.AddIndicator:
		// 判定コードはマスク前の値から計算する
		codes := w.indicatorColumns(X)
		masked := dataset.Map(X, w.mask)
		return dataset.AttachIndicators(masked, codes, indicatorSuffix), nil

	case !w.MarkNaN && w.AddIndicator:
		return dataset.Map(X, w.code), nil

	default:
		// 両方無効の場合は入力をそのまま返す
		return X, nil
	}
}

// Predict はTransformの別名
func (w *WhiskerOutliers) Predict(X dataset.Dataset) (dataset.Dataset, error) {
	return w.Transform(X)
}

// FitTransform は学習と変換を同じデータに対して連続して実行する
func (w *WhiskerOutliers) FitTransform(X dataset.Dataset) (dataset.Dataset, error) {
	if err := w.Fit(X); err != nil {
		return nil, err
	}
	return w.Transform(X)
}

// FitPredict はFitTransformの別名
func (w *WhiskerOutliers) FitPredict(X dataset.Dataset) (dataset.Dataset, error) {
	return w.FitTransform(X)
}

// mask は外れ値をNaNに置き換える
// NaNフェンスとの比較は常にfalseとなるため、その列の値はそのまま通過する
func (w *WhiskerOutliers) mask(_, j int, v float64) float64 {
	if v < w.Min[j] || v > w.Max[j] {
		return math.NaN()
	}
	return v
}

// code は値を判定コードに置き換える
func (w *WhiskerOutliers) code(_, j int, v float64) float64 {
	low, inlier, high := w.indicatorCodes()
	switch {
	case v > w.Max[j]:
		return high
	case v < w.Min[j]:
		return low
	default:
		return inlier
	}
}

// indicatorCodes はDistinct設定に応じた判定コードを返す
func (w *WhiskerOutliers) indicatorCodes() (low, inlier, high float64) {
	if w.Distinct {
		return -1, 0, 1
	}
	return -1, 1, -1
}

// indicatorColumns は各列の判定コードを列優先で計算する
func (w *WhiskerOutliers) indicatorColumns(X dataset.Dataset) [][]float64 {
	codes := make([][]float64, X.Cols())
	for j := range codes {
		codes[j] = make([]float64, X.Rows())
		for i := range codes[j] {
			codes[j][i] = w.code(i, j, X.At(i, j))
		}
	}
	return codes
}

// checkColumnNames は名前付き入力の列名が学習時と一致するか確認する
func (w *WhiskerOutliers) checkColumnNames(X dataset.Dataset) error {
	if w.columns == nil {
		return nil
	}
	names := namedColumns(X)
	if names == nil {
		return nil
	}
	for j := range names {
		if names[j] != w.columns[j] {
			return errors.NewValidationError("WhiskerOutliers.Transform",
				"column names do not match the fitted columns",
				fmt.Sprintf("column %d: got %q, fitted %q", j, names[j], w.columns[j]))
		}
	}
	return nil
}

// fittedColumns は学習時に記録する列名を返す（無名入力の場合はnil）
func fittedColumns(X dataset.Dataset) []string {
	return namedColumns(X)
}

func namedColumns(X dataset.Dataset) []string {
	switch v := X.(type) {
	case *dataset.Series:
		return []string{v.Name}
	case *dataset.Table:
		if v.Columns == nil {
			return nil
		}
		out := make([]string, len(v.Columns))
		copy(out, v.Columns)
		return out
	default:
		return nil
	}
}

// GetParams は検出器のパラメータを取得する
//
// 同一の挙動を持つ未学習インスタンスの再構築に必要な4つのパラメータを
// 全て返す
func (w *WhiskerOutliers) GetParams() map[string]interface{} {
	threshold := make([]float64, len(w.Threshold))
	copy(threshold, w.Threshold)
	return map[string]interface{}{
		"threshold":     threshold,
		"mark_nan":      w.MarkNaN,
		"add_indicator": w.AddIndicator,
		"distinct":      w.Distinct,
	}
}

// SetParams は検出器のパラメータを設定する
// thresholdはfloat64、intまたは[]float64として指定できる
func (w *WhiskerOutliers) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "threshold":
			switch t := value.(type) {
			case float64:
				w.Threshold = []float64{t}
			case int:
				w.Threshold = []float64{float64(t)}
			case []float64:
				ts := make([]float64, len(t))
				copy(ts, t)
				w.Threshold = ts
			default:
				return errors.NewConfigurationError("threshold",
					"threshold must be a number or a slice of numbers", value)
			}
		case "mark_nan":
			b, ok := value.(bool)
			if !ok {
				return errors.NewConfigurationError("mark_nan", "mark_nan must be a bool", value)
			}
			w.MarkNaN = b
		case "add_indicator":
			b, ok := value.(bool)
			if !ok {
				return errors.NewConfigurationError("add_indicator", "add_indicator must be a bool", value)
			}
			w.AddIndicator = b
		case "distinct":
			b, ok := value.(bool)
			if !ok {
				return errors.NewConfigurationError("distinct", "distinct must be a bool", value)
			}
			w.Distinct = b
		default:
			return errors.NewValueError("WhiskerOutliers.SetParams",
				fmt.Sprintf("unknown parameter %q", key))
		}
	}
	return nil
}

// Clone は同じパラメータを持つ未学習のWhiskerOutliersを作成する
func (w *WhiskerOutliers) Clone() *WhiskerOutliers {
	threshold := make([]float64, len(w.Threshold))
	copy(threshold, w.Threshold)
	return &WhiskerOutliers{
		Threshold:    threshold,
		MarkNaN:      w.MarkNaN,
		AddIndicator: w.AddIndicator,
		Distinct:     w.Distinct,
	}
}

// String は検出器の文字列表現を返す
func (w *WhiskerOutliers) String() string {
	if !w.IsFitted() {
		return fmt.Sprintf("WhiskerOutliers(threshold=%v, mark_nan=%t, add_indicator=%t, distinct=%t)",
			w.Threshold, w.MarkNaN, w.AddIndicator, w.Distinct)
	}
	return fmt.Sprintf("WhiskerOutliers(threshold=%v, mark_nan=%t, add_indicator=%t, distinct=%t, n_features=%d)",
		w.Threshold, w.MarkNaN, w.AddIndicator, w.Distinct, w.NFeatures)
}
