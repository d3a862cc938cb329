// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package text

// lineEnding is what byte 10 decodes to on non-Windows targets.
const lineEnding = "\n"
