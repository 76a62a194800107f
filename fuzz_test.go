// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed_test

import (
	"os"
	"path"
	"strings"
	"testing"

	"gate.computer/fixed/internal/model"
)

const (
	fuzzInputDir = "testdata/fuzz/crashers"
)

func TestFuzz(t *testing.T) {
	entries, err := os.ReadDir(fuzzInputDir)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip(err)
		}
		t.Fatal(err)
	}

	for _, entry := range entries {
		if !strings.Contains(entry.Name(), ".") {
			testFuzz(t, path.Join(fuzzInputDir, entry.Name()))
		}
	}
}

func testFuzz(t *testing.T, filename string) {
	t.Log(filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Errorf("%s: %v", filename, err)
		return
	}
	if len(data) == 0 {
		return
	}

	if data[0]&1 == 0 {
		_, err = model.RunVector(data[1:])
	} else {
		_, err = model.RunString(data[1:])
	}
	if err != nil {
		t.Errorf("%s: %v", filename, err)
	}
}
