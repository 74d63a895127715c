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
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/gradeops/submissions/utilities/ddb"
	"github.com/gradeops/submissions/utilities/dir"
	"github.com/gradeops/submissions/utilities/dwl"
	"github.com/gradeops/submissions/utilities/eml"
	"github.com/gradeops/submissions/utilities/gcs"
	"github.com/gradeops/submissions/utilities/gfs"
	"github.com/gradeops/submissions/utilities/gps"
	"github.com/gradeops/submissions/utilities/s3o"
)

// initClients builds once the clients used by every invocation
func (global *Global) initClients(ctx context.Context, instanceDeployment *InstanceDeployment) (err error) {
	service := instanceDeployment.Settings.Service
	hosting := instanceDeployment.Settings.Solution.Hosting

	global.downloader = dwl.NewDownloader(time.Duration(service.Fetch.TimeoutSeconds)*time.Second, service.Fetch.MaxBytes)

	switch service.ArchiveBackend {
	case backendS3:
		awsConfig, err := loadAWSConfig(ctx, hosting.S3.Region, hosting.S3.AccessKeyID, hosting.S3.SecretAccessKey)
		if err != nil {
			return err
		}
		global.archiver = s3o.NewArchiver(awsConfig, hosting.S3.Buckets.Releases.Name, service.LocatorScheme, hosting.S3.EndpointURL)
		global.storageName = "S3"
	default:
		storageClient, err := storage.NewClient(ctx)
		if err != nil {
			return fmt.Errorf("storage.NewClient %v", err)
		}
		global.archiver = gcs.NewArchiver(storageClient, hosting.GCS.Buckets.Releases.Name, service.LocatorScheme)
		global.storageName = "GCS"
	}

	var firestoreClient *firestore.Client
	if instanceDeployment.usesFirestore() {
		firestoreClient, err = firestore.NewClient(ctx, hosting.ProjectID)
		if err != nil {
			return fmt.Errorf("firestore.NewClient %v", err)
		}
	}

	if service.RecordEnabled {
		switch service.RecordBackend {
		case backendFirestore:
			global.recorder = gfs.NewRecorder(firestoreClient, hosting.FireStore.CollectionIDs.Statuses)
		default:
			awsConfig, err := loadAWSConfig(ctx, hosting.DynamoDB.Region, "", "")
			if err != nil {
				return err
			}
			global.recorder = ddb.NewRecorder(awsConfig, hosting.DynamoDB.Tables.Statuses.Name, service.RecordFormat, hosting.DynamoDB.EndpointURL)
		}
	}

	var lookup dir.Lookup
	switch service.DirectoryBackend {
	case dir.BackendFirestore:
		lookup = dir.NewFirestoreLookup(firestoreClient, hosting.FireStore.CollectionIDs.Users, "")
	case dir.BackendAdmin:
		lookup, err = dir.NewAdminLookup(ctx, hosting.Directory.KeyJSONFilePath, hosting.Directory.SuperAdminEmail)
		if err != nil {
			return err
		}
	}
	global.resolver = dir.NewResolver(lookup, hosting.Directory.DefaultRecipient)

	global.notifier, err = eml.NewNotifier(eml.SMTPSettings{
		Host:       hosting.SMTP.Host,
		Port:       int(hosting.SMTP.Port),
		Username:   hosting.SMTP.Username,
		Password:   hosting.SMTP.Password,
		RequireTLS: true,
	}, hosting.SMTP.From)
	if err != nil {
		return err
	}

	if hosting.Pubsub.TopicNames.SubmissionStatus != "" {
		pubsubClient, err := pubsub.NewClient(ctx, hosting.ProjectID)
		if err != nil {
			return fmt.Errorf("pubsub.NewClient %v", err)
		}
		global.publisher = gps.NewStatusPublisher(pubsubClient, hosting.Pubsub.TopicNames.SubmissionStatus)
	}
	return nil
}

// loadAWSConfig default credential chain, or static credentials for S3 compatible stores
func loadAWSConfig(ctx context.Context, region, accessKeyID, secretAccessKey string) (aws.Config, error) {
	optFns := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKeyID != "" {
		optFns = append(optFns, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")))
	}
	awsConfig, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("config.LoadDefaultConfig %v", err)
	}
	return awsConfig, nil
}
