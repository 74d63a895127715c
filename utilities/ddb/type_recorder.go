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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Item formats
const (
	FormatAttributes = "attributes"
	FormatDocument   = "document"
)

// PutItemAPI is the subset of the DynamoDB client used to record
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Recorder writes status records to a table
type Recorder struct {
	client    PutItemAPI
	format    string
	tableName string
}

// NewRecorder returns a recorder using a DynamoDB client built from the AWS config
// endpointURL is optional, used for DynamoDB local
func NewRecorder(awsConfig aws.Config, tableName, format, endpointURL string) *Recorder {
	var dynamodbOpts []func(*dynamodb.Options)
	if endpointURL != "" {
		dynamodbOpts = append(dynamodbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpointURL)
		})
	}
	return NewRecorderWithClient(dynamodb.NewFromConfig(awsConfig, dynamodbOpts...), tableName, format)
}

// NewRecorderWithClient returns a recorder using the provided client
func NewRecorderWithClient(client PutItemAPI, tableName, format string) *Recorder {
	if format == "" {
		format = FormatAttributes
	}
	return &Recorder{
		client:    client,
		format:    format,
		tableName: tableName,
	}
}
