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
	"io"

	"cloud.google.com/go/storage"
)

// Locator schemes
const (
	SchemeGS    = "gs"
	SchemeHTTPS = "https"
)

// ZipContentType content type of the archived objects
const ZipContentType = "application/zip"

// ObjectWriterMaker is the subset of the storage client used to archive, replaced by a fake in tests
type ObjectWriterMaker interface {
	NewWriter(ctx context.Context, bucketName, objectName, contentType string) io.WriteCloser
}

// Archiver uploads submissions to a fixed bucket
type Archiver struct {
	bucketName string
	scheme     string
	writers    ObjectWriterMaker
}

type storageWriterMaker struct {
	storageClient *storage.Client
}

func (maker storageWriterMaker) NewWriter(ctx context.Context, bucketName, objectName, contentType string) io.WriteCloser {
	storageObjectWriter := maker.storageClient.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	storageObjectWriter.ContentType = contentType
	return storageObjectWriter
}

// NewArchiver returns an archiver writing with the storage client
func NewArchiver(storageClient *storage.Client, bucketName string, scheme string) *Archiver {
	return NewArchiverWithWriterMaker(storageWriterMaker{storageClient: storageClient}, bucketName, scheme)
}

// NewArchiverWithWriterMaker returns an archiver writing with the provided writer maker
func NewArchiverWithWriterMaker(writers ObjectWriterMaker, bucketName string, scheme string) *Archiver {
	if scheme == "" {
		scheme = SchemeGS
	}
	return &Archiver{
		bucketName: bucketName,
		scheme:     scheme,
		writers:    writers,
	}
}
