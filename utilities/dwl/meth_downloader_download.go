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
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gradeops/submissions/utilities/logging"
)

// Download GET the source URL and returns the body, nil on any failure
func (downloader *Downloader) Download(ctx context.Context, sourceURL string) []byte {
	content, err := downloader.get(ctx, sourceURL)
	if err != nil {
		log.Println(logging.Entry{
			Severity:    "WARNING",
			Message:     "download_failed",
			Description: fmt.Sprintf("%s %v", sourceURL, err),
			Component:   "dwl",
		})
		return nil
	}
	return content
}

func (downloader *Downloader) get(ctx context.Context, sourceURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, err
	}
	response, err := downloader.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", response.Status)
	}
	// read one byte more than the cap to detect oversized bodies
	content, err := io.ReadAll(io.LimitReader(response.Body, downloader.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > downloader.maxBytes {
		return nil, fmt.Errorf("content larger than %d bytes", downloader.maxBytes)
	}
	return content, nil
}
