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

package image

import (
	"fmt"
	"slices"
	"strings"
)

const (
	ArchAarch64 Arch = "aarch64"
	ArchX86     Arch = "x86_64"
	ArchS390x   Arch = "s390x"
	ArchPPC64le Arch = "ppc64le"
)

type Arch string

// AllArchs returns every architecture BCIs are built for
func AllArchs() []Arch {
	return []Arch{ArchAarch64, ArchX86, ArchS390x, ArchPPC64le}
}

func (a Arch) IsValid() bool {
	switch a {
	case ArchAarch64, ArchX86, ArchS390x, ArchPPC64le:
		return true
	default:
		return false
	}
}

// KeyValue is a single entry of an ordered mapping such as env or labels
type KeyValue struct {
	Name  string
	Value string
}

// KeyValues keeps the order entries were declared in the catalog
type KeyValues []KeyValue

func (kv KeyValues) Get(name string) (string, bool) {
	for _, e := range kv {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Replacement is a replace_using_package_version service entry
type Replacement struct {
	// FileName overrides the recipe file the replacement is applied to
	FileName     string       `yaml:"fileName,omitempty"`
	Regex        string       `yaml:"regex"`
	PackageName  string       `yaml:"packageName"`
	ParseVersion ParseVersion `yaml:"parseVersion,omitempty"`
}

// Descriptor describes a single container image of the catalog
type Descriptor struct {
	Name            string        `yaml:"name"`
	PackageName     string        `yaml:"packageName"`
	License         string        `yaml:"license,omitempty"`
	BuildTags       []string      `yaml:"buildTags"`
	BuildName       string        `yaml:"buildName,omitempty"`
	BuildVersion    string        `yaml:"buildVersion,omitempty"`
	BuildRelease    string        `yaml:"buildRelease,omitempty"`
	OsVersion       OsVersion     `yaml:"osVersion"`
	Kind            ContainerKind `yaml:"kind,omitempty"`
	BuildRecipeType BuildType     `yaml:"buildRecipeType,omitempty"`

	FromImage       string   `yaml:"fromImage,omitempty"`
	FromTargetImage string   `yaml:"fromTargetImage,omitempty"`
	Packages        []string `yaml:"packages,omitempty"`
	NoRecommends    bool     `yaml:"noRecommends,omitempty"`
	Maintainer      string   `yaml:"maintainer,omitempty"`

	Title          string    `yaml:"title,omitempty"`
	Description    string    `yaml:"description,omitempty"`
	VersionLabel   string    `yaml:"versionLabel,omitempty"`
	URL            string    `yaml:"url,omitempty"`
	Vendor         string    `yaml:"vendor,omitempty"`
	Reference      string    `yaml:"reference,omitempty"`
	LabelPrefix    string    `yaml:"labelPrefix,omitempty"`
	SupportLevel   string    `yaml:"supportLevel,omitempty"`
	SupportedUntil string    `yaml:"supportedUntil,omitempty"`
	EULA           string    `yaml:"eula,omitempty"`
	LifecycleURL   string    `yaml:"lifecycleUrl,omitempty"`
	ReleaseStage   string    `yaml:"releaseStage,omitempty"`
	ReadmeURL      string    `yaml:"readmeUrl,omitempty"`
	LogoURL        string    `yaml:"logoUrl,omitempty"`
	ExtraLabels    KeyValues `yaml:"extraLabels,omitempty"`

	Env            KeyValues `yaml:"env,omitempty"`
	EnvFile        string    `yaml:"envFile,omitempty"`
	Entrypoint     []string  `yaml:"entrypoint,omitempty"`
	EntrypointUser string    `yaml:"entrypointUser,omitempty"`
	Cmd            []string  `yaml:"cmd,omitempty"`
	Expose         []string  `yaml:"expose,omitempty"`
	Volumes        []string  `yaml:"volumes,omitempty"`
	CustomEnd      string    `yaml:"customEnd,omitempty"`

	ExclusiveArch []Arch        `yaml:"exclusiveArch,omitempty"`
	Replacements  []Replacement `yaml:"replacements,omitempty"`

	TestEnvironment string `yaml:"testEnvironment,omitempty"`
	TestMarker      string `yaml:"testMarker,omitempty"`
	KiwiVersion     string `yaml:"kiwiVersion,omitempty"`
}

// UID is the unique identifier of the image within the catalog
func (d *Descriptor) UID() string {
	return d.Name
}

func (d *Descriptor) IsRollingRelease() bool {
	return d.OsVersion.IsTumbleweed()
}

// NameAndTag splits the first build tag on its first colon
func (d *Descriptor) NameAndTag() (string, string, error) {
	if len(d.BuildTags) == 0 {
		return "", "", fmt.Errorf("%w: image %q has no build tags", ErrInvalidDescriptor, d.Name)
	}
	name, tag, found := strings.Cut(d.BuildTags[0], ":")
	if !found {
		return "", "", fmt.Errorf("%w: build tag %q of image %q has no tag", ErrInvalidDescriptor, d.BuildTags[0], d.Name)
	}
	return name, tag, nil
}

// AdditionalTags returns the tags of the remaining build tags that share the
// name of the first one
func (d *Descriptor) AdditionalTags() []string {
	name, _, err := d.NameAndTag()
	if err != nil {
		return nil
	}

	var tags []string
	for _, buildTag := range d.BuildTags[1:] {
		n, t, found := strings.Cut(buildTag, ":")
		if found && n == name {
			tags = append(tags, t)
		}
	}
	return tags
}

// BaseImage is the image the build starts from
func (d *Descriptor) BaseImage() string {
	if d.FromImage == "" {
		return "scratch"
	}
	return d.FromImage
}

// RecipeFileName is the name of the build description OBS consumes
func (d *Descriptor) RecipeFileName() string {
	if d.BuildRecipeType == Kiwi {
		return d.PackageName + ".kiwi"
	}
	return "Dockerfile"
}

// MergeEnv appends the given variables sorted by name, variables already
// declared on the descriptor take precedence
func (d *Descriptor) MergeEnv(envs map[string]string) {
	names := make([]string, 0, len(envs))
	for name := range envs {
		if _, ok := d.Env.Get(name); !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		d.Env = append(d.Env, KeyValue{Name: name, Value: envs[name]})
	}
}
