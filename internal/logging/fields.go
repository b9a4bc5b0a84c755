// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

// Keys of the key/value pairs the commands log.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldFiles  = "files"
	FieldConfig = "config"

	// Per-document results.
	FieldBlocks     = "blocks"
	FieldReferences = "references"
	FieldChanged    = "changed"
)
