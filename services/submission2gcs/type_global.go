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
	"context"
	"time"

	"github.com/gradeops/submissions/utilities/subm"
)

// Global structure for global variables to optimize the cloud function performances
// Built once by Initialize, then only read by invocations
type Global struct {
	environment         string
	initFailed          bool
	instanceName        string
	microserviceName    string
	notifyOnFailure     bool
	recordFailures      bool
	retryOnTransient    bool
	retryTimeOutSeconds int64
	sourceURLField      string
	storageName         string
	archiver            archiver
	downloader          downloader
	notifier            notifier
	now                 func() time.Time
	publisher           publisher
	recorder            recorder
	resolver            resolver
}

// Result is what the invocation returns: 200 Success or 500 Error: <message>
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type downloader interface {
	Download(ctx context.Context, sourceURL string) []byte
}

type archiver interface {
	Archive(ctx context.Context, userID, assignmentID string, content []byte) (locator string, err error)
}

type resolver interface {
	Resolve(ctx context.Context, userID string) (email string, err error)
}

type notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type recorder interface {
	Record(ctx context.Context, record subm.StatusRecord) error
}

type publisher interface {
	Publish(ctx context.Context, record subm.StatusRecord) (id string, err error)
}
