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
	"github.com/gradeops/submissions/utilities/ddb"
	"github.com/gradeops/submissions/utilities/dir"
	"github.com/gradeops/submissions/utilities/dwl"
	"github.com/gradeops/submissions/utilities/gcs"
	"github.com/gradeops/submissions/utilities/solution"
	"github.com/gradeops/submissions/utilities/subm"
)

const (
	serviceName = "submission2gcs"

	// Archive and record backends
	backendGCS       = "gcs"
	backendS3        = "s3"
	backendDynamoDB  = "dynamodb"
	backendFirestore = "firestore"

	defaultSMTPHost             = "smtp.mailgun.org"
	defaultSMTPPort             = 587
	defaultRetryTimeOutSeconds  = 600
	defaultUsersCollectionID    = "users"
	defaultStatusesCollectionID = "submissions"
	defaultStatusesTableName    = "submissions"
	defaultAWSRegion            = "us-east-1"
)

// InstanceDeployment settings structure, loaded from the settings file deployed with the function
type InstanceDeployment struct {
	Core struct {
		EnvironmentName string `yaml:"environmentName" valid:"isNotZeroValue"`
		InstanceName    string `yaml:"instanceName" valid:"isNotZeroValue"`
		ServiceName     string `yaml:"serviceName" valid:"isNotZeroValue"`
	}
	Settings Settings
}

// Settings flat settings structure: solution - service
type Settings struct {
	Solution solution.Settings
	Service  ServiceSettings
}

// ServiceSettings message fields, failure handling and backend choices
type ServiceSettings struct {
	SourceURLField   string `yaml:"sourceURLField" valid:"isOneOf,releaseUrl|submissionUrl"`
	LocatorScheme    string `yaml:"locatorScheme" valid:"isOneOf,gs|s3|https"`
	RecordFormat     string `yaml:"recordFormat" valid:"isOneOf,attributes|document"`
	RecordEnabled    bool   `yaml:"recordEnabled"`
	RecordFailures   bool   `yaml:"recordFailures"`
	NotifyOnFailure  bool   `yaml:"notifyOnFailure"`
	ArchiveBackend   string `yaml:"archiveBackend" valid:"isOneOf,gcs|s3"`
	RecordBackend    string `yaml:"recordBackend" valid:"isOneOf,dynamodb|firestore"`
	DirectoryBackend string `yaml:"directoryBackend" valid:"isOneOf,static|firestore|admin"`
	GCF              struct {
		RetryTimeOutSeconds int64 `yaml:"retryTimeOutSeconds"`
		RetryOnTransient    bool  `yaml:"retryOnTransient"`
	} `yaml:"gcf"`
	Fetch struct {
		TimeoutSeconds int64 `yaml:"timeoutSeconds"`
		MaxBytes       int64 `yaml:"maxBytes"`
	}
}

// NewInstanceDeployment create deployment structure with the default settings
func NewInstanceDeployment() *InstanceDeployment {
	instanceDeployment := &InstanceDeployment{}
	instanceDeployment.Core.ServiceName = serviceName

	service := &instanceDeployment.Settings.Service
	service.SourceURLField = subm.ReleaseURLField
	service.LocatorScheme = gcs.SchemeGS
	service.RecordFormat = ddb.FormatAttributes
	service.RecordEnabled = true
	service.ArchiveBackend = backendGCS
	service.RecordBackend = backendDynamoDB
	service.DirectoryBackend = dir.BackendStatic
	service.GCF.RetryTimeOutSeconds = defaultRetryTimeOutSeconds
	service.Fetch.MaxBytes = dwl.DefaultMaxBytes

	hosting := &instanceDeployment.Settings.Solution.Hosting
	hosting.SMTP.Host = defaultSMTPHost
	hosting.SMTP.Port = defaultSMTPPort
	hosting.S3.Region = defaultAWSRegion
	hosting.DynamoDB.Region = defaultAWSRegion
	hosting.DynamoDB.Tables.Statuses.Name = defaultStatusesTableName
	hosting.FireStore.CollectionIDs.Statuses = defaultStatusesCollectionID
	hosting.FireStore.CollectionIDs.Users = defaultUsersCollectionID
	return instanceDeployment
}
