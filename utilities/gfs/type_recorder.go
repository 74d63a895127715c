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

package gfs

import "cloud.google.com/go/firestore"

// Recorder writes status records as Firestore documents
type Recorder struct {
	collectionID    string
	firestoreClient *firestore.Client
}

// NewRecorder returns a recorder writing in the given collection
func NewRecorder(firestoreClient *firestore.Client, collectionID string) *Recorder {
	return &Recorder{
		collectionID:    collectionID,
		firestoreClient: firestoreClient,
	}
}
