// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aut

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestUnitGetClientOption(t *testing.T) {
	dir := t.TempDir()
	notAKeyPath := filepath.Join(dir, "notakey.json")
	if err := os.WriteFile(notAKeyPath, []byte(`{"type":"authorized_user"}`), 0600); err != nil {
		t.Fatal(err)
	}
	var testCases = []struct {
		name string
		path string
	}{
		{
			name: "missingFile",
			path: filepath.Join(dir, "missing.json"),
		},
		{
			name: "notAServiceAccountKey",
			path: notAKeyPath,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := GetClientOption(context.Background(), tc.path, "admin@example.com", []string{"scope"})
			if err == nil {
				t.Errorf("want an error for %s", tc.path)
			}
		})
	}
}
