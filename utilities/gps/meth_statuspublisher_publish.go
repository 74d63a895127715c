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

package gps

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/gradeops/submissions/utilities/subm"
)

// Publish sends one status record and waits for the server message id
// No retry on pubsub publish as already implemented in the GO client
func (publisher *StatusPublisher) Publish(ctx context.Context, record subm.StatusRecord) (id string, err error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(record) %w", err)
	}
	publishResult := publisher.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			AttributeUserID:       record.UserID,
			AttributeAssignmentID: record.AssignmentID,
			AttributeStatus:       string(record.Status),
		},
	})
	id, err = publishResult.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publishResult.Get topic %s %w", publisher.topic.ID(), err)
	}
	return id, nil
}
