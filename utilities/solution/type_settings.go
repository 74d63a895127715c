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

package solution

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		GCS        struct {
			Buckets struct {
				Releases struct {
					Name  string `yaml:",omitempty"`
					Names map[string]string
				}
			}
		}
		S3 struct {
			Region          string
			EndpointURL     string `yaml:"endpointURL"`
			AccessKeyID     string `yaml:"accessKeyID"`
			SecretAccessKey string `yaml:"secretAccessKey"`
			Buckets         struct {
				Releases struct {
					Name  string `yaml:",omitempty"`
					Names map[string]string
				}
			}
		} `yaml:"s3"`
		DynamoDB struct {
			Region      string
			EndpointURL string `yaml:"endpointURL"`
			Tables      struct {
				Statuses struct {
					Name  string `yaml:",omitempty"`
					Names map[string]string
				}
			}
		} `yaml:"dynamoDB"`
		FireStore struct {
			CollectionIDs struct {
				Statuses string
				Users    string
			} `yaml:"collectionIDs"`
		}
		Pubsub struct {
			TopicNames struct {
				SubmissionStatus string `yaml:"submissionStatus"`
			} `yaml:"topicNames"`
		}
		SMTP struct {
			Host     string `valid:"isNotZeroValue"`
			Port     int64  `valid:"isNotZeroValue"`
			From     string `valid:"isNotZeroValue"`
			Username string
			Password string
		} `yaml:"smtp"`
		Directory struct {
			DefaultRecipient string `yaml:"defaultRecipient"`
			KeyJSONFilePath  string `yaml:"keyJSONFilePath"`
			SuperAdminEmail  string `yaml:"superAdminEmail"`
		}
	}
}
