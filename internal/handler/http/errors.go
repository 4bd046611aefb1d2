// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidJSON is reported to clients whose request body cannot be decoded
// into the endpoint's request model.
var errInvalidJSON = errors.New("invalid JSON was passed")
