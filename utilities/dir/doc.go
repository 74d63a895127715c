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
Package dir resolves the email address of a submitting user

Resolution order

1. the user id is already an email address: use it

2. lookup the user id in the configured directory:

- firestore: document {collectionID}/{userId}, string field holding the email

- admin: Google Workspace directory users.get, primaryEmail

3. lookup failed or returned nothing: use the default recipient when configured, else fail
*/
package dir
