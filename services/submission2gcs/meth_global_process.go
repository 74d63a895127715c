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
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gradeops/submissions/utilities/subm"
)

// Email subjects and bodies
const (
	subjectSuccess    = "Success"
	subjectError      = "Error"
	successBodyFormat = "Release stored in %s at %s"
	failureBodyFormat = "Submission processing failed: %s"
)

const (
	successBody       = "Success"
	errorBodyPrefix   = "Error: "
	statusCodeFailure = http.StatusInternalServerError
)

// Process runs the pipeline on one notification payload: parse, fetch, archive, notify, record
func (global *Global) Process(ctx context.Context, data []byte) Result {
	result, _ := global.process(ctx, data, "")
	return result
}

// process returns the failure cause along with the result, nil on success
func (global *Global) process(ctx context.Context, data []byte, pubsubID string) (result Result, err error) {
	inv := &invocation{
		global:   global,
		id:       uuid.New().String(),
		pubsubID: pubsubID,
	}
	// ids known before the first fallible step, to record failures against
	inv.userID, inv.assignmentID = subm.PeekIdentity(data)

	event, err := subm.ParseEvent(data, global.sourceURLField)
	if err != nil {
		return inv.fail(ctx, stepParse, err), err
	}
	inv.userID, inv.assignmentID = event.UserID, event.AssignmentID

	content := global.downloader.Download(ctx, event.SourceURL)
	if len(content) == 0 {
		err = fmt.Errorf("%w: %s", subm.ErrFetchFailed, event.SourceURL)
		inv.logStepFailed(stepFetch, err)
		if notifyErr := inv.notify(ctx, subjectError, subm.FetchFailedMessage); notifyErr != nil {
			inv.log("WARNING", "step_failed", stepNotify, notifyErr.Error())
		}
		inv.publish(ctx, subm.NewFailureRecord(event.UserID, event.AssignmentID, subm.FetchFailedMessage, global.now()))
		return Result{StatusCode: statusCodeFailure, Body: errorBodyPrefix + subm.FetchFailedMessage}, err
	}

	locator, err := global.archiver.Archive(ctx, event.UserID, event.AssignmentID, content)
	if err != nil {
		return inv.fail(ctx, stepArchive, err), err
	}

	err = inv.notify(ctx, subjectSuccess, fmt.Sprintf(successBodyFormat, global.storageName, locator))
	if err != nil {
		return inv.fail(ctx, stepNotify, err), err
	}

	record, err := subm.NewSuccessRecord(event.UserID, event.AssignmentID, locator, global.now())
	if err != nil {
		return inv.fail(ctx, stepRecord, err), err
	}
	if global.recorder != nil {
		err = global.recorder.Record(ctx, record)
		if err != nil {
			return inv.fail(ctx, stepRecord, err), err
		}
	}
	inv.publish(ctx, record)
	return Result{StatusCode: http.StatusOK, Body: successBody}, nil
}
