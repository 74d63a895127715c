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
Package services structure

Every service package exposes the same shape to its cloud function

## Two functions and one type

### `Initialize` function

- Runs once per cloud function instance, at cold start
- Reads settings.yaml, applies environment overrides, validates
- Builds the expensive objects once: storage, DynamoDB, Firestore, SMTP and Pub/Sub clients
- Keeps them in the `Global` variable of the function package

### `Global` type

- Carries the clients and settings prepared by `Initialize`
- Read only once built, shared by every invocation of the instance

### `EntryPoint` function

- Runs on every Pub/Sub event triggering the cloud function
- Checks the event age, runs the service task, logs one `finish` entry
- Returns an error only when the event should be retried
*/
package services
