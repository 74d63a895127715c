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

package dir

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/gradeops/submissions/utilities/gfs"
)

// FirestoreLookup reads user documents
type FirestoreLookup struct {
	collectionID    string
	emailField      string
	firestoreClient *firestore.Client
}

// NewFirestoreLookup returns a lookup reading {collectionID}/{userId}, emailField defaults to email
func NewFirestoreLookup(firestoreClient *firestore.Client, collectionID string, emailField string) *FirestoreLookup {
	if emailField == "" {
		emailField = "email"
	}
	return &FirestoreLookup{
		collectionID:    collectionID,
		emailField:      emailField,
		firestoreClient: firestoreClient,
	}
}

// LookupEmail implements Lookup
func (lookup *FirestoreLookup) LookupEmail(ctx context.Context, userID string) (string, error) {
	documentPath := lookup.collectionID + "/" + userID
	documentSnap, found, err := gfs.GetDoc(ctx, lookup.firestoreClient, documentPath)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("user document not found %s", documentPath)
	}
	value, err := documentSnap.DataAt(lookup.emailField)
	if err != nil {
		return "", fmt.Errorf("documentSnap.DataAt %s %s %v", documentPath, lookup.emailField, err)
	}
	email, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %s of %s is not a string", lookup.emailField, documentPath)
	}
	return email, nil
}
