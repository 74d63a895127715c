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
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Locator schemes
const (
	SchemeS3    = "s3"
	SchemeHTTPS = "https"
)

// PutObjectAPI is the subset of the S3 client used to archive
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver uploads submissions to a fixed S3 bucket
type Archiver struct {
	bucketName string
	scheme     string
	client     PutObjectAPI
}

// NewArchiver returns an archiver using an S3 client built from the AWS config
// endpointURL is optional, used for S3 compatible stores, and implies path style addressing
func NewArchiver(awsConfig aws.Config, bucketName, scheme, endpointURL string) *Archiver {
	var s3Opts []func(*s3.Options)
	if endpointURL != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpointURL)
			o.UsePathStyle = true
		})
	}
	return NewArchiverWithClient(s3.NewFromConfig(awsConfig, s3Opts...), bucketName, scheme)
}

// NewArchiverWithClient returns an archiver using the provided client
func NewArchiverWithClient(client PutObjectAPI, bucketName, scheme string) *Archiver {
	if scheme == "" {
		scheme = SchemeS3
	}
	return &Archiver{
		bucketName: bucketName,
		scheme:     scheme,
		client:     client,
	}
}
