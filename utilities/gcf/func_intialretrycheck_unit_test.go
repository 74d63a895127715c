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

package gcf

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/functions/metadata"
)

func TestUnitIntialRetryCheck(t *testing.T) {
	var testCases = []struct {
		name                string
		ctx                 context.Context
		retryTimeOutSeconds int64
		wantOK              bool
		wantErr             bool
	}{
		{
			name:                "noMetadata",
			ctx:                 context.Background(),
			retryTimeOutSeconds: 600,
			wantOK:              false,
			wantErr:             true,
		},
		{
			name: "freshEvent",
			ctx: metadata.NewContext(context.Background(), &metadata.Metadata{
				EventID:   "1",
				Timestamp: time.Now().Add(-10 * time.Second),
			}),
			retryTimeOutSeconds: 600,
			wantOK:              true,
		},
		{
			name: "expiredEvent",
			ctx: metadata.NewContext(context.Background(), &metadata.Metadata{
				EventID:   "2",
				Timestamp: time.Now().Add(-1 * time.Hour),
			}),
			retryTimeOutSeconds: 600,
			wantOK:              false,
		},
		{
			name: "noTimeOut",
			ctx: metadata.NewContext(context.Background(), &metadata.Metadata{
				EventID:   "3",
				Timestamp: time.Now().Add(-24 * time.Hour),
			}),
			retryTimeOutSeconds: 0,
			wantOK:              true,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ok, eventMetadata, err := IntialRetryCheck(tc.ctx, tc.retryTimeOutSeconds)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Should send back an error and is NOT")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			if ok != tc.wantOK {
				t.Errorf("got %v, want %v", ok, tc.wantOK)
			}
			if eventMetadata == nil {
				t.Errorf("Should send back metadata and is NOT")
			}
		})
	}
}
