// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit reports that the user closed the program deliberately.
var ErrUserQuit = errors.New("vom Benutzer beendet")
