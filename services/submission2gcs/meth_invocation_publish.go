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

// publish sends the final status record when a status topic is configured, errors are only logged
func (inv *invocation) publish(ctx context.Context, record subm.StatusRecord) {
	if inv.global.publisher == nil {
		return
	}
	id, err := inv.global.publisher.Publish(ctx, record)
	if err != nil {
		inv.log("WARNING", "step_failed", stepPublish, err.Error())
		return
	}
	inv.log("INFO", "published", stepPublish, fmt.Sprintf("message id %s status %s", id, record.Status))
}
