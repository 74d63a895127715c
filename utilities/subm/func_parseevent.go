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

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseEvent extracts the submission event from a notification payload
// sourceURLField is the preferred source URL field name, releaseUrl or submissionUrl
func ParseEvent(data []byte, sourceURLField string) (event Event, err error) {
	m, err := unmarshalMessage(data)
	if err != nil {
		return event, err
	}
	event.UserID = m.UserID
	event.AssignmentID = m.assignmentID()
	event.SourceURL = m.sourceURL(sourceURLField)

	var missing []string
	if event.UserID == "" {
		missing = append(missing, "userId")
	}
	if event.AssignmentID == "" {
		missing = append(missing, "assignmentId")
	}
	if event.SourceURL == "" {
		missing = append(missing, sourceURLField)
	}
	if len(missing) > 0 {
		return event, fmt.Errorf("%w: missing %s", ErrMalformedPayload, strings.Join(missing, ", "))
	}
	return event, nil
}

// PeekIdentity returns the user and assignment ids, UnknownID for any id that cannot be parsed
func PeekIdentity(data []byte) (userID string, assignmentID string) {
	userID, assignmentID = UnknownID, UnknownID
	m, err := unmarshalMessage(data)
	if err != nil {
		return userID, assignmentID
	}
	if m.UserID != "" {
		userID = m.UserID
	}
	if m.assignmentID() != "" {
		assignmentID = m.assignmentID()
	}
	return userID, assignmentID
}

func unmarshalMessage(data []byte) (m message, err error) {
	var fields map[string]json.RawMessage
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return m, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if inner, ok := unwrap(fields); ok {
		data = inner
	}
	err = json.Unmarshal(data, &m)
	if err != nil {
		return m, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return m, nil
}

// unwrap returns the inner message of an SNS or Pub/Sub push envelope
// fields that merely share the envelope names are left to the message
func unwrap(fields map[string]json.RawMessage) (inner []byte, ok bool) {
	if raw, found := fields["Records"]; found {
		var records []snsRecord
		if json.Unmarshal(raw, &records) == nil && len(records) > 0 && records[0].Sns.Message != "" {
			return []byte(records[0].Sns.Message), true
		}
	}
	if raw, found := fields["message"]; found {
		var pushed pushMessage
		if json.Unmarshal(raw, &pushed) == nil && len(pushed.Data) > 0 {
			return pushed.Data, true
		}
	}
	return nil, false
}
