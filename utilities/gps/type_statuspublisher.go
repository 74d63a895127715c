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
	"cloud.google.com/go/pubsub"
)

// Message attribute names
const (
	AttributeUserID       = "userId"
	AttributeAssignmentID = "assignmentId"
	AttributeStatus       = "status"
)

// StatusPublisher publishes status records to a topic
type StatusPublisher struct {
	topic *pubsub.Topic
}

// NewStatusPublisher one publisher per topic, to be built at cold start
func NewStatusPublisher(pubsubClient *pubsub.Client, topicName string) *StatusPublisher {
	return &StatusPublisher{
		topic: pubsubClient.Topic(topicName),
	}
}
