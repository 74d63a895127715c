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

package gcs

import (
	"context"
	"fmt"

	"github.com/gradeops/submissions/utilities/subm"
)

// Archive writes the content to {userId}/{assignmentId}/release.zip and returns the object locator
func (archiver *Archiver) Archive(ctx context.Context, userID, assignmentID string, content []byte) (locator string, err error) {
	objectName := subm.ObjectName(userID, assignmentID)
	storageObjectWriter := archiver.writers.NewWriter(ctx, archiver.bucketName, objectName, ZipContentType)
	_, err = storageObjectWriter.Write(content)
	if err != nil {
		storageObjectWriter.Close()
		return "", fmt.Errorf("%w: storageObjectWriter.Write %s %w", subm.ErrStorageUpload, objectName, err)
	}
	err = storageObjectWriter.Close()
	if err != nil {
		return "", fmt.Errorf("%w: storageObjectWriter.Close %s %w", subm.ErrStorageUpload, objectName, err)
	}
	return Locator(archiver.scheme, archiver.bucketName, objectName), nil
}

// Locator renders the URI of an object for a given scheme
func Locator(scheme, bucketName, objectName string) string {
	if scheme == SchemeHTTPS {
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName)
	}
	return fmt.Sprintf("gs://%s/%s", bucketName, objectName)
}
