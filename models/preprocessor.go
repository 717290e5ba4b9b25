// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Categorical encoding modes understood by the inference service.
const (
	CategoricalNone                                = "none"
	CategoricalNumeric                             = "numeric"
	CategoricalOneHot                              = "onehot"
	CategoricalOrdinal                             = "ordinal"
	CategoricalOrdinalShuffled                     = "ordinal_shuffled"
	CategoricalOrdinalVeryCommonCategoriesShuffled = "ordinal_very_common_categories_shuffled"
)

// PreprocessorConfig describes a single feature transform applied by the
// remote service to every ensemble member. The client never interprets it:
// the value is forwarded verbatim as part of the estimator parameters.
//
// PreprocessorConfig is a comparable value type, so two descriptors are
// equal exactly when all their fields are equal.
type PreprocessorConfig struct {
	// Name of the transform (e.g. "quantile_uni", "safepower", "none").
	Name string

	// CategoricalName is the categorical encoding mode, one of the
	// Categorical* constants. Defaults to [CategoricalNone].
	CategoricalName string

	// AppendOriginal appends the untransformed features to the output.
	AppendOriginal bool

	// SubsampleFeatures is the fraction of features to keep. Values <= 0
	// disable feature subsampling.
	SubsampleFeatures float64

	// GlobalTransformerName optionally names a transform applied to the
	// whole feature matrix (e.g. "svd"). Empty means none.
	GlobalTransformerName string
}

// PreprocessorOption customises a [PreprocessorConfig] built by
// [NewPreprocessorConfig].
type PreprocessorOption func(*PreprocessorConfig)

// NewPreprocessorConfig returns a descriptor for the named transform with
// the service defaults (no categorical encoding, no original features, no
// subsampling, no global transformer) and then applies opts.
func NewPreprocessorConfig(name string, opts ...PreprocessorOption) PreprocessorConfig {
	cfg := PreprocessorConfig{
		Name:              name,
		CategoricalName:   CategoricalNone,
		SubsampleFeatures: -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCategorical sets the categorical encoding mode.
func WithCategorical(name string) PreprocessorOption {
	return func(c *PreprocessorConfig) { c.CategoricalName = name }
}

// WithAppendOriginal enables appending the original features.
func WithAppendOriginal() PreprocessorOption {
	return func(c *PreprocessorConfig) { c.AppendOriginal = true }
}

// WithSubsampleFeatures sets the feature subsampling fraction.
func WithSubsampleFeatures(fraction float64) PreprocessorOption {
	return func(c *PreprocessorConfig) { c.SubsampleFeatures = fraction }
}

// WithGlobalTransformer sets the global transformer name.
func WithGlobalTransformer(name string) PreprocessorOption {
	return func(c *PreprocessorConfig) { c.GlobalTransformerName = name }
}

// CanBeCached reports whether the transform output is deterministic for a
// given dataset, which holds when no feature subsampling is applied.
func (p PreprocessorConfig) CanBeCached() bool {
	return p.SubsampleFeatures <= 0
}

// String renders the descriptor in the compact form used by the service in
// logs and cache keys, e.g. "quantile_uni_cat:onehot_and_none".
func (p PreprocessorConfig) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString("_cat:")
	b.WriteString(p.CategoricalName)
	if p.AppendOriginal {
		b.WriteString("_and_none")
	}
	if p.SubsampleFeatures > 0 {
		b.WriteString("_subsample_feats_")
		b.WriteString(strconv.FormatFloat(p.SubsampleFeatures, 'f', -1, 64))
	}
	if p.GlobalTransformerName != "" {
		b.WriteString("_global_transformer_")
		b.WriteString(p.GlobalTransformerName)
	}
	return b.String()
}

// ToMap returns the descriptor as a parameter map with snake_case keys. An
// empty global transformer is rendered as nil.
func (p PreprocessorConfig) ToMap() map[string]any {
	var global any
	if p.GlobalTransformerName != "" {
		global = p.GlobalTransformerName
	}
	return map[string]any{
		"name":                    p.Name,
		"categorical_name":        p.CategoricalName,
		"append_original":         p.AppendOriginal,
		"subsample_features":      p.SubsampleFeatures,
		"global_transformer_name": global,
	}
}

// MarshalJSON implements [json.Marshaler] using the [PreprocessorConfig.ToMap] layout.
func (p PreprocessorConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}
