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
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gradeops/submissions/utilities/subm"
)

type fakeS3Client struct {
	objects map[string][]byte
	err     error
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestUnitArchive(t *testing.T) {
	var testCases = []struct {
		name        string
		scheme      string
		err         error
		wantLocator string
	}{
		{
			name:        "s3Scheme",
			scheme:      SchemeS3,
			wantLocator: "s3://releases/u1/a1/release.zip",
		},
		{
			name:        "httpsScheme",
			scheme:      SchemeHTTPS,
			wantLocator: "https://releases.s3.amazonaws.com/u1/a1/release.zip",
		},
		{
			name:   "putFails",
			scheme: SchemeS3,
			err:    fmt.Errorf("api error AccessDenied: Access Denied"),
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := &fakeS3Client{objects: make(map[string][]byte), err: tc.err}
			locator, err := NewArchiverWithClient(client, "releases", tc.scheme).Archive(context.Background(), "u1", "a1", []byte("zip"))
			if tc.err != nil {
				if !errors.Is(err, subm.ErrStorageUpload) {
					t.Errorf("want ErrStorageUpload got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if locator != tc.wantLocator {
				t.Errorf("want %s got %s", tc.wantLocator, locator)
			}
			if string(client.objects["releases/u1/a1/release.zip"]) != "zip" {
				t.Errorf("object not stored")
			}
		})
	}
}
