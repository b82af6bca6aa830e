// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoRouter      = errors.New("no router to serve")
	errDecodingEvent = errors.New("error decoding api gateway event")
)
