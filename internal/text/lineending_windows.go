// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package text

// lineEnding is what byte 10 decodes to on Windows targets.
const lineEnding = "\r\n"
