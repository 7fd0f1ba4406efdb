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

	"go.yaml.in/yaml/v3"
)

// ContainerKind tells which family of BCI an image belongs to. Application
// stacks are a specialization of development containers.
type ContainerKind int

const (
	KindBase ContainerKind = iota
	KindOS
	KindDevelopment
	KindApplication
)

func ParseContainerKind(s string) (ContainerKind, error) {
	switch s {
	case "", "base":
		return KindBase, nil
	case "os":
		return KindOS, nil
	case "development":
		return KindDevelopment, nil
	case "application":
		return KindApplication, nil
	default:
		return KindBase, fmt.Errorf("container kind not supported: %s", s)
	}
}

func (k ContainerKind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindOS:
		return "os"
	case KindDevelopment:
		return "development"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// IsOS is true only for plain operating system containers
func (k ContainerKind) IsOS() bool {
	return k == KindOS
}

// IsDevelopment is true for language containers and for application stacks
func (k ContainerKind) IsDevelopment() bool {
	return k == KindDevelopment || k == KindApplication
}

func (k ContainerKind) IsApplicationStack() bool {
	return k == KindApplication
}

func (k *ContainerKind) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseContainerKind(value.Value)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// BuildType is the recipe OBS builds the image from
type BuildType int

const (
	Docker BuildType = iota
	Kiwi
)

func ParseBuildType(s string) (BuildType, error) {
	switch s {
	case "", "docker":
		return Docker, nil
	case "kiwi":
		return Kiwi, nil
	default:
		return Docker, fmt.Errorf("build recipe type not supported: %s", s)
	}
}

func (b BuildType) String() string {
	switch b {
	case Docker:
		return "docker"
	case Kiwi:
		return "kiwi"
	default:
		return "unknown"
	}
}

// RepositoryName is the OBS repository the recipe type is built in
func (b BuildType) RepositoryName() string {
	if b == Kiwi {
		return "images"
	}
	return "containerfile"
}

func (b *BuildType) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseBuildType(value.Value)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseVersion selects which part of a package version the
// replace_using_package_version service substitutes
type ParseVersion string

const (
	ParseMajor       ParseVersion = "major"
	ParseMinor       ParseVersion = "minor"
	ParsePatch       ParseVersion = "patch"
	ParsePatchUpdate ParseVersion = "patch_update"
	ParseOffset      ParseVersion = "offset"
)

func (p ParseVersion) IsValid() bool {
	switch p {
	case "", ParseMajor, ParseMinor, ParsePatch, ParsePatchUpdate, ParseOffset:
		return true
	default:
		return false
	}
}
