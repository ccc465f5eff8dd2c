// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

// EqualErr default message for failed Equal-assertion.
const EqualErr = equalErr

// NotEqualErr default message for failed NotEqual-assertion.
const NotEqualErr = notEqualErr

// NilErr default message for failed Nil-assertion.
const NilErr = nilErr

// NotNilErr default message for failed NotNil-assertion.
const NotNilErr = notNilErr

// PanicsErr default message for failed Panics-assertion.
const PanicsErr = panicsErr

// NilBodyErr failure message of a test case without body.
const NilBodyErr = nilBodyErr
