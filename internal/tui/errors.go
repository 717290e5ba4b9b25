// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrUserQuit is returned when the user leaves a prompt with ctrl+c.
var ErrUserQuit = errors.New("user quit the prompt")

const msgNoConnection = "No network connection or the service is unavailable"

// unreachableMarkers are substrings of transport errors that resty reports
// without a typed cause.
var unreachableMarkers = []string{"connection refused", "no such host", "network is unreachable"}

// humanizeServerUnavailableError turns transport failures into a short notice
// and keeps every other error text as is.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return msgNoConnection
	}

	text := strings.ToLower(err.Error())
	for _, marker := range unreachableMarkers {
		if strings.Contains(text, marker) {
			return msgNoConnection
		}
	}
	return err.Error()
}
