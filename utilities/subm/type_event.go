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

package subm

// Known source URL field names
const (
	ReleaseURLField    = "releaseUrl"
	SubmissionURLField = "submissionUrl"
)

// UnknownID placeholder used to record failures when the identity cannot be parsed
const UnknownID = "unknown"

// Event submission notification
type Event struct {
	UserID       string
	AssignmentID string
	SourceURL    string
}

// message is the union of the field names used by the notification producers
type message struct {
	UserID            string `json:"userId"`
	AssignmentID      string `json:"assignmentId"`
	AssignmentIDAlias string `json:"assignment_Id"`
	ReleaseURL        string `json:"releaseUrl"`
	SubmissionURL     string `json:"submissionUrl"`
}

// snsRecord is one entry of an SNS notification Records array
type snsRecord struct {
	Sns struct {
		Message string `json:"Message"`
	} `json:"Sns"`
}

// pushMessage is the message of a Pub/Sub push request
type pushMessage struct {
	Data []byte `json:"data"`
}

func (m message) assignmentID() string {
	if m.AssignmentID != "" {
		return m.AssignmentID
	}
	return m.AssignmentIDAlias
}

func (m message) sourceURL(sourceURLField string) string {
	switch sourceURLField {
	case SubmissionURLField:
		if m.SubmissionURL != "" {
			return m.SubmissionURL
		}
		return m.ReleaseURL
	default:
		if m.ReleaseURL != "" {
			return m.ReleaseURL
		}
		return m.SubmissionURL
	}
}
