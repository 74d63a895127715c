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

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GetDoc reads a document, found is false when the document does not exist
func GetDoc(ctx context.Context,
	firestoreClient *firestore.Client,
	documentPath string) (documentSnap *firestore.DocumentSnapshot, found bool, err error) {
	documentSnap, err = firestoreClient.Doc(documentPath).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return documentSnap, false, nil
		}
		return documentSnap, false, fmt.Errorf("firestoreClient.Doc(documentPath).Get %s %v", documentPath, err)
	}
	return documentSnap, documentSnap.Exists(), nil
}
