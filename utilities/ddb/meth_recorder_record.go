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

package ddb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gradeops/submissions/utilities/subm"
)

// Record puts one status record item
func (recorder *Recorder) Record(ctx context.Context, record subm.StatusRecord) (err error) {
	_, err = recorder.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(recorder.tableName),
		Item:      recorder.Item(record),
	})
	if err != nil {
		return fmt.Errorf("%w: dynamodb PutItem table %s userId %s assignmentId %s %w",
			subm.ErrRecordPersist, recorder.tableName, record.UserID, record.AssignmentID, err)
	}
	return nil
}

// Item renders a status record in the recorder format
func (recorder *Recorder) Item(record subm.StatusRecord) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		"userId":       &types.AttributeValueMemberS{Value: record.UserID},
		"assignmentId": &types.AttributeValueMemberS{Value: record.AssignmentID},
	}
	// the attributes format carries status on failures only
	if recorder.format == FormatDocument || record.Status != subm.StatusSuccess {
		item["status"] = &types.AttributeValueMemberS{Value: string(record.Status)}
	}
	if record.Locator != "" {
		item["objectPath"] = &types.AttributeValueMemberS{Value: record.Locator}
	}
	if record.ErrorMessage != "" {
		item["errorMessage"] = &types.AttributeValueMemberS{Value: record.ErrorMessage}
	}
	switch recorder.format {
	case FormatDocument:
		item["timestamp"] = &types.AttributeValueMemberS{Value: record.Timestamp.UTC().Format(time.RFC3339Nano)}
	default:
		item["timestamp"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(record.Timestamp.Unix(), 10)}
	}
	return item
}
