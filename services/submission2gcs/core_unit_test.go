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

package submission2gcs

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/functions/metadata"
	"github.com/gradeops/submissions/utilities/gps"
	"github.com/gradeops/submissions/utilities/solution"
	"google.golang.org/api/googleapi"
)

func TestUnitEntryPoint(t *testing.T) {
	var testCases = []struct {
		name             string
		initFailed       bool
		noMetadata       bool
		eventAge         time.Duration
		path             string
		retryOnTransient bool
		archiveErr       error
		wantRetry        bool
		wantRequests     int64
	}{
		{
			name:       "noMetadataRetry",
			noMetadata: true,
			path:       "/ok.zip",
			wantRetry:  true,
		},
		{
			name:       "initFailedNoRetry",
			initFailed: true,
			path:       "/ok.zip",
		},
		{
			name:     "expiredEventNoRetry",
			eventAge: 2 * time.Hour,
			path:     "/ok.zip",
		},
		{
			name:         "success",
			path:         "/ok.zip",
			wantRequests: 1,
		},
		{
			name:             "fetchFailedNoRetry",
			path:             "/missing.zip",
			retryOnTransient: true,
			wantRequests:     1,
		},
		{
			name:             "transientRetry",
			path:             "/ok.zip",
			retryOnTransient: true,
			archiveErr:       &googleapi.Error{Code: 503, Message: "backend error"},
			wantRetry:        true,
			wantRequests:     1,
		},
		{
			name:         "transientNoRetryWhenDisabled",
			path:         "/ok.zip",
			archiveErr:   &googleapi.Error{Code: 503, Message: "backend error"},
			wantRequests: 1,
		},
		{
			name:             "permanentNoRetry",
			path:             "/ok.zip",
			retryOnTransient: true,
			archiveErr:       &googleapi.Error{Code: 403, Message: "forbidden"},
			wantRequests:     1,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.global.initFailed = tc.initFailed
			f.global.retryOnTransient = tc.retryOnTransient
			f.bucket.closeErr = tc.archiveErr

			ctx := context.Background()
			if !tc.noMetadata {
				ctx = metadata.NewContext(ctx, &metadata.Metadata{
					EventID:   "event-" + tc.name,
					Timestamp: time.Now().Add(-tc.eventAge),
				})
			}
			msg := gps.PubSubMessage{
				Data: payload(t, map[string]string{"userId": "u1", "assignmentId": "a1", "releaseUrl": f.url(tc.path)}),
			}

			err := EntryPoint(ctx, msg, f.global)

			if tc.wantRetry && err == nil {
				t.Errorf("Should send back an error to retry and is NOT")
			}
			if !tc.wantRetry && err != nil {
				t.Errorf("Should NOT retry, got %v", err)
			}
			if n := atomic.LoadInt64(&f.requests); n != tc.wantRequests {
				t.Errorf("got %d HTTP requests, want %d", n, tc.wantRequests)
			}
		})
	}
}

func TestUnitInitializeFailedThenNoRetry(t *testing.T) {
	t.Chdir(t.TempDir())
	settingsPath := filepath.Join(solution.PathToFunctionCode, solution.SettingsFileName)
	var testCases = []struct {
		name     string
		settings string
	}{
		{
			name: "settingsFileNotFound",
		},
		{
			name:     "settingsNotYAML",
			settings: "core: [",
		},
		{
			name: "missingEnvironmentName",
			settings: `
core:
  instanceName: submission2gcs_test
settings:
  solution:
    hosting:
      gcs:
        buckets:
          releases:
            name: releases
      smtp:
        from: noreply@example.edu
      directory:
        defaultRecipient: grader@example.edu
`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.RemoveAll(solution.PathToFunctionCode)
			if tc.settings != "" {
				if err := os.MkdirAll(solution.PathToFunctionCode, 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(settingsPath, []byte(tc.settings), 0644); err != nil {
					t.Fatal(err)
				}
			}
			var global Global
			if err := Initialize(context.Background(), &global); err == nil {
				t.Fatalf("Should fail to initialize and did NOT")
			}
			if !global.initFailed {
				t.Fatalf("Should remember the failed initialization and does NOT")
			}
			ctx := metadata.NewContext(context.Background(), &metadata.Metadata{
				EventID:   "event-" + tc.name,
				Timestamp: time.Now(),
			})
			msg := gps.PubSubMessage{
				Data: payload(t, map[string]string{"userId": "u1", "assignmentId": "a1", "releaseUrl": "http://127.0.0.1/ok.zip"}),
			}
			if err := EntryPoint(ctx, msg, &global); err != nil {
				t.Errorf("Should NOT retry after a failed initialization, got %v", err)
			}
		})
	}
}
