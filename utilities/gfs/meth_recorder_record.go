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

	"github.com/gradeops/submissions/utilities/subm"
)

// Record sets the status record document
func (recorder *Recorder) Record(ctx context.Context, record subm.StatusRecord) (err error) {
	documentPath := recorder.collectionID + "/" + record.DocumentID()
	_, err = recorder.firestoreClient.Doc(documentPath).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("%w: firestoreClient.Doc(documentPath).Set %s %w", subm.ErrRecordPersist, documentPath, err)
	}
	return nil
}
