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

package s3o

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gradeops/submissions/utilities/subm"
)

// Archive puts the content at {userId}/{assignmentId}/release.zip and returns the object locator
func (archiver *Archiver) Archive(ctx context.Context, userID, assignmentID string, content []byte) (locator string, err error) {
	objectName := subm.ObjectName(userID, assignmentID)
	_, err = archiver.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(archiver.bucketName),
		Key:           aws.String(objectName),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String("application/zip"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: s3 PutObject %s %w", subm.ErrStorageUpload, objectName, err)
	}
	return Locator(archiver.scheme, archiver.bucketName, objectName), nil
}

// Locator renders the URI of an object for a given scheme
func Locator(scheme, bucketName, objectName string) string {
	if scheme == SchemeHTTPS {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucketName, objectName)
	}
	return fmt.Sprintf("s3://%s/%s", bucketName, objectName)
}
