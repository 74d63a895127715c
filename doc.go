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
Package submissions relays graded assignment submissions to object storage

## What

A Pub/Sub triggered cloud function, submission2gcs, processes each submission notification:

1. Parse the message: user id, assignment id, release URL
2. Download the release over HTTP
3. Store it in a bucket as {userId}/{assignmentId}/release.zip
4. Email the user where the release is stored
5. Record the submission status in a key-value table

## Layout

- functions: deployable cloud function entry points
- services: one package per microservice, Initialize at cold start and EntryPoint per event
- utilities: one package per concern, shared by the services

## Settings

Each function instance reads settings.yaml deployed next to its code. GCS_BUCKET_NAME, DYNAMODB_TABLE_NAME,
EMAIL_USERNAME and EMAIL_PASSWORD environment variables override the file.
*/
package submissions
