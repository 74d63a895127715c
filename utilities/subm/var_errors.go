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

package subm

import "errors"

// Error kinds raised by the submission processing steps
var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrFetchFailed      = errors.New("fetch failed")
	ErrStorageUpload    = errors.New("storage upload error")
	ErrEmailDelivery    = errors.New("email delivery error")
	ErrRecordPersist    = errors.New("record persist error")
)

// FetchFailedMessage is the user facing message of a failed or empty download
const FetchFailedMessage = "Invalid release URL or empty release payload."
