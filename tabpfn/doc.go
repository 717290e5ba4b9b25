// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tabpfn is a client for the hosted TabPFN tabular foundation model.
//
// A [Session] holds the state of one connection to the inference service:
// whether it was initialized, whether the service is used, the email of the
// authenticated user and the collaborators that talk to the service. The
// estimators [Classifier] and [Regressor] take the session explicitly and
// forward fit and predict calls to it.
//
// Typical use:
//
//	sess, err := tabpfn.NewSession()
//	if err != nil { ... }
//	defer sess.Close()
//
//	if err = sess.Init(ctx, true); err != nil { ... }
//
//	clf, err := tabpfn.NewClassifier(ctx, sess, tabpfn.DefaultClassifierConfig())
//	if err != nil { ... }
//	if _, err = clf.Fit(ctx, X, y); err != nil { ... }
//	labels, err := clf.Predict(ctx, XTest)
//
// A Session is not safe for concurrent use; callers serialize Init, Reset and
// estimator calls on the same session.
package tabpfn
