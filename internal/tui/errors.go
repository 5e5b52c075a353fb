// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit reports that the user closed the program from the interface.
var ErrUserQuit = errors.New("user quit")
