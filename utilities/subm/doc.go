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

/*
Package subm holds the submission types shared by the submission microservices

Submission event

The notification message describing a submitted file:

 {"userId": "u1", "assignmentId": "a1", "releaseUrl": "https://host/release.zip"}

The assignment id may also be provided as assignment_Id, the source URL as submissionUrl.
The message may be received as is, wrapped in an SNS like envelope (Records[0].Sns.Message) or
wrapped in a Pub/Sub push envelope (message.data).

Status record

One record per invocation, append only. A Success record always carries the object locator,
a Failed record always carries the error message and never a locator.

Error kinds

ErrMalformedPayload, ErrFetchFailed, ErrStorageUpload, ErrEmailDelivery, ErrRecordPersist.
Steps wrap them with fmt.Errorf %w so callers use errors.Is.
*/
package subm
