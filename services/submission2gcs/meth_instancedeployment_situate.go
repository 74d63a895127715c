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
	"os"
	"strings"

	"github.com/gradeops/submissions/utilities/dir"
	"github.com/gradeops/submissions/utilities/gcs"
	"github.com/gradeops/submissions/utilities/s3o"
	"github.com/gradeops/submissions/utilities/validater"
)

// Environment variables overriding the settings file
const (
	envGCSBucketName     = "GCS_BUCKET_NAME"
	envDynamoDBTableName = "DYNAMODB_TABLE_NAME"
	envEmailUsername     = "EMAIL_USERNAME"
	envEmailPassword     = "EMAIL_PASSWORD"
)

// Situate complement settings taking in account the situation: environment name then environment variables
// lookupEnv is os.LookupEnv when nil
func (instanceDeployment *InstanceDeployment) Situate(lookupEnv func(string) (string, bool)) (err error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	hosting := &instanceDeployment.Settings.Solution.Hosting
	instanceDeployment.Settings.Solution.Situate(instanceDeployment.Core.EnvironmentName)

	if value, ok := lookupEnv(envGCSBucketName); ok && value != "" {
		hosting.GCS.Buckets.Releases.Name = value
	}
	if value, ok := lookupEnv(envDynamoDBTableName); ok && value != "" {
		hosting.DynamoDB.Tables.Statuses.Name = value
	}
	if value, ok := lookupEnv(envEmailUsername); ok {
		hosting.SMTP.Username = value
	}
	if value, ok := lookupEnv(envEmailPassword); ok {
		hosting.SMTP.Password = value
	}
	return instanceDeployment.check()
}

// check validates tagged settings then the settings each backend requires
func (instanceDeployment *InstanceDeployment) check() (err error) {
	err = validater.ValidateStruct(instanceDeployment, serviceName)
	if err != nil {
		return err
	}
	service := instanceDeployment.Settings.Service
	hosting := instanceDeployment.Settings.Solution.Hosting
	var problems []string

	switch service.ArchiveBackend {
	case backendGCS:
		if hosting.GCS.Buckets.Releases.Name == "" {
			problems = append(problems, fmt.Sprintf("missing GCS releases bucket name, set %s", envGCSBucketName))
		}
		if service.LocatorScheme != gcs.SchemeGS && service.LocatorScheme != gcs.SchemeHTTPS {
			problems = append(problems, fmt.Sprintf("locator scheme %s not supported by backend %s", service.LocatorScheme, backendGCS))
		}
	case backendS3:
		if hosting.S3.Buckets.Releases.Name == "" {
			problems = append(problems, "missing S3 releases bucket name")
		}
		if service.LocatorScheme != s3o.SchemeS3 && service.LocatorScheme != s3o.SchemeHTTPS {
			problems = append(problems, fmt.Sprintf("locator scheme %s not supported by backend %s", service.LocatorScheme, backendS3))
		}
	}

	if instanceDeployment.usesFirestore() && hosting.ProjectID == "" {
		problems = append(problems, "missing projectID for firestore")
	}
	if hosting.Pubsub.TopicNames.SubmissionStatus != "" && hosting.ProjectID == "" {
		problems = append(problems, "missing projectID for the submission status topic")
	}
	if service.RecordEnabled && service.RecordBackend == backendDynamoDB && hosting.DynamoDB.Tables.Statuses.Name == "" {
		problems = append(problems, fmt.Sprintf("missing DynamoDB statuses table name, set %s", envDynamoDBTableName))
	}

	switch service.DirectoryBackend {
	case dir.BackendStatic:
		if hosting.Directory.DefaultRecipient == "" {
			problems = append(problems, "directory backend static requires a default recipient")
		}
	case dir.BackendAdmin:
		if hosting.Directory.KeyJSONFilePath == "" || hosting.Directory.SuperAdminEmail == "" {
			problems = append(problems, "directory backend admin requires keyJSONFilePath and superAdminEmail")
		}
	}
	if hosting.Directory.DefaultRecipient != "" && !dir.IsEmailAddress(hosting.Directory.DefaultRecipient) {
		problems = append(problems, fmt.Sprintf("default recipient is not an email address %s", hosting.Directory.DefaultRecipient))
	}

	if len(problems) > 0 {
		return fmt.Errorf("settings validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (instanceDeployment *InstanceDeployment) usesFirestore() bool {
	service := instanceDeployment.Settings.Service
	return (service.RecordEnabled && service.RecordBackend == backendFirestore) ||
		service.DirectoryBackend == dir.BackendFirestore
}
