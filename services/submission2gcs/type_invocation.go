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
	"fmt"
	"log"

	"github.com/gradeops/submissions/utilities/logging"
)

// Pipeline steps, as logged
const (
	stepParse   = "parse"
	stepFetch   = "fetch"
	stepArchive = "archive"
	stepNotify  = "notify"
	stepRecord  = "record"
	stepPublish = "publish"
)

// invocation state owned by one event processing
type invocation struct {
	assignmentID string
	global       *Global
	id           string
	pubsubID     string
	userID       string
}

func (inv *invocation) log(severity, message, step, description string) {
	log.Println(logging.Entry{
		MicroserviceName:   inv.global.microserviceName,
		InstanceName:       inv.global.instanceName,
		Environment:        inv.global.environment,
		Severity:           severity,
		Message:            message,
		Description:        description,
		InvocationID:       inv.id,
		Step:               step,
		UserID:             inv.userID,
		AssignmentID:       inv.assignmentID,
		TriggeringPubsubID: inv.pubsubID,
	})
}

func (inv *invocation) logStepFailed(step string, err error) {
	inv.log("ERROR", "step_failed", step, fmt.Sprintf("%v", err))
}
