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

package erm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnitIsTransient(t *testing.T) {
	sentinel := errors.New("storage upload error")
	var testCases = []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{
			name:          "nil",
			err:           nil,
			wantTransient: false,
		},
		{
			name:          "err403",
			err:           fmt.Errorf("403 forbidden"),
			wantTransient: false,
		},
		{
			name:          "err500",
			err:           fmt.Errorf("500 Internal Server Error"),
			wantTransient: true,
		},
		{
			name:          "err503",
			err:           fmt.Errorf("503 Service Unavailable"),
			wantTransient: true,
		},
		{
			name:          "err429",
			err:           fmt.Errorf("429 Too Many Requests"),
			wantTransient: true,
		},
		{
			name:          "googleErrorText503",
			err:           fmt.Errorf("googleapi: Error 503: backendError"),
			wantTransient: true,
		},
		{
			name:          "codeInsideAWord",
			err:           fmt.Errorf("user u500 has no email"),
			wantTransient: false,
		},
		{
			name:          "codeInsideAPort",
			err:           fmt.Errorf("dial tcp 127.0.0.1:35003: connect: connection refused"),
			wantTransient: false,
		},
		{
			name:          "googleapi404",
			err:           fmt.Errorf("%w: %w", sentinel, &googleapi.Error{Code: 404, Message: "bucket 503 not found"}),
			wantTransient: false,
		},
		{
			name:          "googleapi502",
			err:           fmt.Errorf("%w: %w", sentinel, &googleapi.Error{Code: 502}),
			wantTransient: true,
		},
		{
			name:          "awsThrottling",
			err:           fmt.Errorf("%w: %w", sentinel, &smithy.GenericAPIError{Code: "ThrottlingException"}),
			wantTransient: true,
		},
		{
			name:          "awsAccessDenied",
			err:           fmt.Errorf("%w: %w", sentinel, &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "500 reasons"}),
			wantTransient: false,
		},
		{
			name:          "grpcUnavailable",
			err:           fmt.Errorf("%w: %w", sentinel, status.Error(codes.Unavailable, "try later")),
			wantTransient: true,
		},
		{
			name:          "grpcPermissionDenied",
			err:           status.Error(codes.PermissionDenied, "no"),
			wantTransient: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := IsTransient(tc.err)
			if tc.wantTransient {
				if tc.wantTransient != result {
					t.Errorf("Should find transient in err %v", tc.err)
				}
			} else {
				if tc.wantTransient != result {
					t.Errorf("Should NOT find transient in err %v", tc.err)
				}
			}
		})
	}
}
