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
	"fmt"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/suse/bci-dockerfile-generator/internal/image"
)

const (
	defaultFlavor = "BCI-Updates"
	defaultBuild  = "%build_%sourcepackage"
	baseTestEnvs  = "all,metadata"
	stagingHost   = "registry.suse.de"
)

type TestSettings struct {
	BCITestEnvs          string
	BCIImageMarker       string
	BCIImageName         string
	ContainerImageToTest string
}

func (s TestSettings) ToMap() Fields {
	return Fields{}.
		Add("BCI_TEST_ENVS", s.BCITestEnvs).
		Add("BCI_IMAGE_MARKER", s.BCIImageMarker).
		Add("BCI_IMAGE_NAME", s.BCIImageName).
		Add("CONTAINER_IMAGE_TO_TEST", s.ContainerImageToTest)
}

// TestPackage locates a package in the build service
type TestPackage struct {
	Project string
	Repo    string
	Package string
}

func (p TestPackage) ToMap() Fields {
	return Fields{}.
		Add("project", p.Project).
		Add("repo", p.Repo).
		Add("package", p.Package)
}

// ReleasePackage is a TestPackage that is released under a name prefix
type ReleasePackage struct {
	TestPackage
	Prefix string
}

func (p ReleasePackage) ToMap() Fields {
	return p.TestPackage.ToMap().Add("prefix", p.Prefix)
}

// ContainerTest describes the openQA test run of a single staged image
type ContainerTest struct {
	Name     string
	Version  string
	Flavor   string
	Build    string
	GroupID  int
	Arch     []image.Arch
	Settings TestSettings
	Source   TestPackage
	Testing  TestPackage
	Release  ReleasePackage
}

// NewContainerTest derives the test run of an SLE 15 image from its
// descriptor. The descriptor is expected to be resolved and validated.
func NewContainerTest(d *image.Descriptor) (*ContainerTest, error) {
	if !d.OsVersion.IsSLE15() {
		return nil, fmt.Errorf("image %s: %s is not an SLE 15 service pack", d.UID(), d.OsVersion.PrettyPrint())
	}
	if len(d.BuildTags) == 0 {
		return nil, fmt.Errorf("%w: image %s has no build tags", image.ErrInvalidDescriptor, d.UID())
	}

	groupID, err := GroupID(d)
	if err != nil {
		return nil, err
	}

	registryPath, err := stagingReference(d)
	if err != nil {
		return nil, err
	}

	sp := d.OsVersion.PrettyPrint()
	crProject := fmt.Sprintf("SUSE:SLE-15-%s:Update:CR", sp)

	testEnvs := baseTestEnvs
	if d.TestEnvironment != "" {
		testEnvs = fmt.Sprintf("%s,%s", baseTestEnvs, d.TestEnvironment)
	}

	return &ContainerTest{
		Name:    fmt.Sprintf("SLE15-%s-%s", sp, d.UID()),
		Version: fmt.Sprintf("15-%s", sp),
		Flavor:  defaultFlavor,
		Build:   defaultBuild,
		GroupID: groupID,
		Arch:    d.ExclusiveArch,
		Settings: TestSettings{
			BCITestEnvs:          testEnvs,
			BCIImageMarker:       d.TestMarker,
			BCIImageName:         d.TestMarker,
			ContainerImageToTest: registryPath,
		},
		Source: TestPackage{
			Project: crProject,
			Repo:    d.BuildRecipeType.RepositoryName(),
			Package: d.PackageName,
		},
		Testing: TestPackage{
			Project: crProject + ":ToTest",
			Repo:    "images",
			Package: d.PackageName,
		},
		Release: ReleasePackage{
			TestPackage: TestPackage{
				Project: fmt.Sprintf("SUSE:Containers:SLE-SERVER:15-%s", sp),
				Repo:    "containers",
			},
			Prefix: d.PackageName,
		},
	}, nil
}

// stagingReference returns the location of the image in the staging
// registry. A reference ending in the OS version placeholder gets every
// occurrence of it substituted. References still carrying build service
// placeholders are returned unchecked.
func stagingReference(d *image.Descriptor) (string, error) {
	path := fmt.Sprintf(
		"%s/suse/sle-15-%s/update/cr/totest/images/%s",
		stagingHost, strings.ToLower(d.OsVersion.PrettyPrint()), d.BuildTags[0],
	)
	if strings.HasSuffix(path, image.OsVersionIDSPPlaceholder) {
		path = strings.ReplaceAll(path, image.OsVersionIDSPPlaceholder, d.OsVersion.ContainerOSVersion())
	}

	if strings.Contains(path, "%") {
		return path, nil
	}
	if _, err := name.ParseReference(path); err != nil {
		return "", fmt.Errorf("%w: image %s: staging reference %q: %w", image.ErrInvalidDescriptor, d.UID(), path, err)
	}
	return path, nil
}

// ToMap returns the sparse mapping of the test run. Unset fields are
// dropped and an architecture list covering every architecture is
// treated as unrestricted.
func (c *ContainerTest) ToMap() Fields {
	f := Fields{}.
		Add("version", c.Version).
		Add("flavor", c.Flavor).
		Add("build", c.Build).
		Add("groupid", c.GroupID)

	if len(c.Arch) > 0 && len(c.Arch) != len(image.AllArchs()) {
		archs := make([]string, 0, len(c.Arch))
		for _, a := range c.Arch {
			archs = append(archs, string(a))
		}
		f = f.Add("arch", archs)
	}

	return f.
		Add("settings", c.Settings.ToMap()).
		Add("source", c.Source.ToMap()).
		Add("testing", c.Testing.ToMap()).
		Add("release", c.Release.ToMap())
}
