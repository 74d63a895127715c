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
	"fmt"
	"time"
)

// Status outcome of a submission processing
type Status string

// Status values
const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// StatusRecord outcome of one invocation, keyed by userId and assignmentId
type StatusRecord struct {
	UserID       string    `json:"userId" firestore:"userId"`
	AssignmentID string    `json:"assignmentId" firestore:"assignmentId"`
	Locator      string    `json:"objectPath,omitempty" firestore:"objectPath,omitempty"`
	Status       Status    `json:"status" firestore:"status"`
	ErrorMessage string    `json:"errorMessage,omitempty" firestore:"errorMessage,omitempty"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
}

// NewSuccessRecord builds the record of a stored submission
func NewSuccessRecord(userID, assignmentID, locator string, timestamp time.Time) (StatusRecord, error) {
	if locator == "" {
		return StatusRecord{}, fmt.Errorf("a success record requires a locator")
	}
	return StatusRecord{
		UserID:       userID,
		AssignmentID: assignmentID,
		Locator:      locator,
		Status:       StatusSuccess,
		Timestamp:    timestamp.UTC(),
	}, nil
}

// NewFailureRecord builds the record of a failed submission processing
func NewFailureRecord(userID, assignmentID, errorMessage string, timestamp time.Time) StatusRecord {
	if errorMessage == "" {
		errorMessage = "unknown error"
	}
	return StatusRecord{
		UserID:       userID,
		AssignmentID: assignmentID,
		Status:       StatusFailed,
		ErrorMessage: errorMessage,
		Timestamp:    timestamp.UTC(),
	}
}

// DocumentID is the single key combining userId and assignmentId
func (r StatusRecord) DocumentID() string {
	return r.UserID + "_" + r.AssignmentID
}
