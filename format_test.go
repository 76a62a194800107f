// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
)

func formatValue(x any) string { return fmt.Sprintf("%v", x) }
func formatGo(x any) string    { return fmt.Sprintf("%#v", x) }
