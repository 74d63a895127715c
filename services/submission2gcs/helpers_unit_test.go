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

package submission2gcs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gradeops/submissions/utilities/ddb"
	"github.com/gradeops/submissions/utilities/dir"
	"github.com/gradeops/submissions/utilities/dwl"
	"github.com/gradeops/submissions/utilities/eml"
	"github.com/gradeops/submissions/utilities/gcs"
	"github.com/gradeops/submissions/utilities/subm"
)

const (
	testBucketName       = "releases"
	testDefaultRecipient = "grader@example.edu"
	testFrom             = "noreply@example.edu"
	testReleaseSize      = 200
)

var testNow = time.Unix(1700000000, 0)

type fakeObject struct {
	content     []byte
	contentType string
}

// fakeBucket implements gcs.ObjectWriterMaker in memory
type fakeBucket struct {
	mu       sync.Mutex
	closeErr error
	objects  map[string]fakeObject
	writes   int
}

type fakeObjectWriter struct {
	bucket      *fakeBucket
	buf         bytes.Buffer
	contentType string
	name        string
}

func (bucket *fakeBucket) NewWriter(ctx context.Context, bucketName, objectName, contentType string) io.WriteCloser {
	return &fakeObjectWriter{
		bucket:      bucket,
		contentType: contentType,
		name:        bucketName + "/" + objectName,
	}
}

func (w *fakeObjectWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *fakeObjectWriter) Close() error {
	w.bucket.mu.Lock()
	defer w.bucket.mu.Unlock()
	if w.bucket.closeErr != nil {
		return w.bucket.closeErr
	}
	w.bucket.objects[w.name] = fakeObject{content: w.buf.Bytes(), contentType: w.contentType}
	w.bucket.writes++
	return nil
}

type fakeTransport struct {
	mu        sync.Mutex
	delivered []eml.Email
	err       error
}

func (transport *fakeTransport) Deliver(ctx context.Context, email eml.Email) error {
	transport.mu.Lock()
	defer transport.mu.Unlock()
	if transport.err != nil {
		return transport.err
	}
	transport.delivered = append(transport.delivered, email)
	return nil
}

// fakeTable implements ddb.PutItemAPI in memory
type fakeTable struct {
	mu    sync.Mutex
	err   error
	items []map[string]types.AttributeValue
}

func (table *fakeTable) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	table.mu.Lock()
	defer table.mu.Unlock()
	if table.err != nil {
		return nil, table.err
	}
	table.items = append(table.items, params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

type fakePublisher struct {
	mu      sync.Mutex
	records []subm.StatusRecord
}

func (publisher *fakePublisher) Publish(ctx context.Context, record subm.StatusRecord) (string, error) {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	publisher.records = append(publisher.records, record)
	return "1", nil
}

// fixture wires a Global on in memory backends and a local release server
type fixture struct {
	bucket    *fakeBucket
	global    *Global
	publisher *fakePublisher
	requests  int64
	server    *httptest.Server
	table     *fakeTable
	transport *fakeTransport
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		bucket:    &fakeBucket{objects: make(map[string]fakeObject)},
		publisher: &fakePublisher{},
		table:     &fakeTable{},
		transport: &fakeTransport{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.requests, 1)
		switch r.URL.Path {
		case "/ok.zip":
			w.Write(bytes.Repeat([]byte{'z'}, testReleaseSize))
		case "/empty.zip":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.server.Close)

	f.global = &Global{
		environment:         "test",
		instanceName:        serviceName + "_test",
		microserviceName:    serviceName,
		retryTimeOutSeconds: defaultRetryTimeOutSeconds,
		sourceURLField:      subm.ReleaseURLField,
		storageName:         "GCS",
		archiver:            gcs.NewArchiverWithWriterMaker(f.bucket, testBucketName, gcs.SchemeGS),
		downloader:          dwl.NewDownloader(5*time.Second, 0),
		notifier:            eml.NewNotifierWithTransport(f.transport, testFrom),
		now:                 func() time.Time { return testNow },
		publisher:           f.publisher,
		recorder:            ddb.NewRecorderWithClient(f.table, "submissions", ddb.FormatAttributes),
		resolver:            dir.NewResolver(nil, testDefaultRecipient),
	}
	return f
}

func (f *fixture) url(path string) string {
	return f.server.URL + path
}

func payload(t *testing.T, fields map[string]string) []byte {
	t.Helper()
	data, err := json.Marshal(fields)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func stringAttribute(t *testing.T, item map[string]types.AttributeValue, name string) string {
	t.Helper()
	value, ok := item[name]
	if !ok {
		return ""
	}
	s, ok := value.(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("attribute %s is %T, want S", name, value)
	}
	return s.Value
}
