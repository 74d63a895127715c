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
Package submission2gcs relays a submitted release to Cloud Storage

Triggered by a Pub/Sub message carrying a user id, an assignment id and a release URL:

- download the release over HTTP
- store it as {userId}/{assignmentId}/release.zip in the releases bucket
- email the user the storage locator
- record the status in a DynamoDB table, or a Firestore collection

The source URL field name, the locator scheme, the record format and failure persistence are settings.

Returns a status code 200 with body Success, or 500 with body "Error: <message>".
*/
package submission2gcs
