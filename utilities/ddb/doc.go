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
Package ddb records submission status in an Amazon DynamoDB table

The table is keyed by userId (partition) and assignmentId (sort). PutItem overwrites: last write wins.

Item formats

attributes: epoch seconds timestamp

 userId S, assignmentId S, objectPath S, timestamp N
 failures add status S, errorMessage S

document: ISO-8601 timestamp

 userId S, assignmentId S, status S, objectPath S, errorMessage S, timestamp S

objectPath and errorMessage are present only when set.
*/
package ddb
