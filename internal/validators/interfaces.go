// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of datasets before they are sent to
// the inference service, so malformed input fails without an upload.
//
// [DatasetValidator] understands [TrainingSet] and [PredictionSet]. The
// optional field names passed to Validate restrict the check to those rules.
package validators

import "context"

// Validator validates obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
