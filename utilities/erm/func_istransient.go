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
	"strings"
	"unicode"

	"github.com/aws/smithy-go"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var transientErrors = []string{"429", "500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511"}

var transientAWSErrorCodes = []string{
	"InternalError",
	"InternalServerError",
	"ProvisionedThroughputExceededException",
	"RequestLimitExceeded",
	"ServiceUnavailable",
	"SlowDown",
	"ThrottlingException",
}

// IsTransient check if the error is worth a retry: 5xx, 429, throttling, unavailable
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var googleapiErr *googleapi.Error
	if errors.As(err, &googleapiErr) {
		return googleapiErr.Code == 429 || googleapiErr.Code >= 500
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range transientAWSErrorCodes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
		return false
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Internal:
		return true
	}
	// codes match whole words only, u500 or port 35003 are not status codes
	words := strings.FieldsFunc(err.Error(), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		for _, transientError := range transientErrors {
			if word == transientError {
				return true
			}
		}
	}
	return false
}
