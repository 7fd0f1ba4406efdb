/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package staging

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/suse/bci-dockerfile-generator/internal/image"
	"github.com/suse/bci-dockerfile-generator/pkg/log"
)

const defaultRetry = 1

// Document is the test matrix handed over to the release bot
type Document struct {
	Projects []*ContainerTest
}

// Defaults returns the settings shared by every project of the matrix
func Defaults() Fields {
	archs := []string{}
	for _, a := range image.AllArchs() {
		archs = append(archs, string(a))
	}
	return Fields{}.
		Add("arch", archs).
		Add("settings", Fields{}.
			Add("RETRY", defaultRetry).
			Add("BCI_TEST_ENVS", baseTestEnvs))
}

// Generate builds the test matrix of all the images matched by the
// selector. Images synthesizing the same project name replace each other
// in place.
func Generate(logger log.Logger, images []*image.Descriptor, sel Selector) (*Document, error) {
	doc := &Document{}
	index := map[string]int{}

	for _, d := range images {
		if !sel.Match(d) {
			continue
		}

		test, err := NewContainerTest(d)
		if err != nil {
			return nil, err
		}

		if i, ok := index[test.Name]; ok {
			logger.Debug("Project %s already in the test matrix, replacing it with image %s", test.Name, d.UID())
			doc.Projects[i] = test
			continue
		}
		index[test.Name] = len(doc.Projects)
		doc.Projects = append(doc.Projects, test)
	}

	logger.Debug("Selected %d images for %s", len(doc.Projects), sel)
	return doc, nil
}

// Project returns the test run registered under the given name
func (doc *Document) Project(name string) (*ContainerTest, bool) {
	for _, p := range doc.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func (doc *Document) ToMap() Fields {
	projects := Fields{}
	for _, p := range doc.Projects {
		projects = append(projects, Field{Key: p.Name, Value: p.ToMap()})
	}
	return Fields{
		{Key: "defaults", Value: Defaults()},
		{Key: "projects", Value: projects},
	}
}

func (doc *Document) MarshalYAML() (any, error) {
	return doc.ToMap().Node(), nil
}

// Encode writes the document as YAML indented by two spaces. Sequence
// items are aligned with their parent key.
func (doc *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	enc.CompactSeqIndent()
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
