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

	"github.com/gradeops/submissions/utilities/subm"
)

// fail ends the invocation on a failed step, with best effort failure email, failure record and status message
func (inv *invocation) fail(ctx context.Context, step string, err error) Result {
	inv.logStepFailed(step, err)
	global := inv.global

	if global.notifyOnFailure && step != stepParse && step != stepNotify {
		if notifyErr := inv.notify(ctx, subjectError, fmt.Sprintf(failureBodyFormat, err.Error())); notifyErr != nil {
			inv.log("WARNING", "step_failed", stepNotify, notifyErr.Error())
		}
	}

	record := subm.NewFailureRecord(inv.userID, inv.assignmentID, err.Error(), global.now())
	if global.recordFailures && global.recorder != nil {
		if recordErr := global.recorder.Record(ctx, record); recordErr != nil {
			inv.log("WARNING", "step_failed", stepRecord, recordErr.Error())
		}
	}
	inv.publish(ctx, record)
	return Result{StatusCode: statusCodeFailure, Body: errorBodyPrefix + err.Error()}
}
