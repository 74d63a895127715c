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

package dwl

import (
	"net/http"
	"time"
)

// DefaultMaxBytes caps the size of a downloaded file
const DefaultMaxBytes int64 = 512 << 20

// Downloader fetches a source URL content
type Downloader struct {
	httpClient *http.Client
	maxBytes   int64
}

// NewDownloader returns a downloader. A zero timeout keeps the http client default: no timeout.
// A maxBytes lower or equal to zero means DefaultMaxBytes
func NewDownloader(timeout time.Duration, maxBytes int64) *Downloader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Downloader{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   maxBytes,
	}
}
