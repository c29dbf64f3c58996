// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointrtree

const packageName = "pointrtree: "

func textPanic(text string) {
	panic(packageName + text)
}
