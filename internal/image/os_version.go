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
	"strings"

	"go.yaml.in/yaml/v3"
)

// OsVersion identifies the operating system release an image is built on.
// Values are ordered by release date.
type OsVersion int

const (
	SP3 OsVersion = iota + 1
	SP4
	SP5
	SP6
	Tumbleweed
)

// OsVersionIDSPPlaceholder is replaced by OBS with the container tag
// representation of the OS version (e.g. 15.5)
const OsVersionIDSPPlaceholder = "%OS_VERSION_ID_SP%"

// SLE15Versions returns the service packs of the SLE 15 lineage in release order
func SLE15Versions() []OsVersion {
	return []OsVersion{SP3, SP4, SP5, SP6}
}

func ParseOsVersion(s string) (OsVersion, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "3", "sp3":
		return SP3, nil
	case "4", "sp4":
		return SP4, nil
	case "5", "sp5":
		return SP5, nil
	case "6", "sp6":
		return SP6, nil
	case "tumbleweed":
		return Tumbleweed, nil
	default:
		return OsVersion(0), fmt.Errorf("os version not supported: %s", s)
	}
}

// String returns the value used on the command line and in catalog files
func (o OsVersion) String() string {
	switch o {
	case SP3:
		return "3"
	case SP4:
		return "4"
	case SP5:
		return "5"
	case SP6:
		return "6"
	case Tumbleweed:
		return "Tumbleweed"
	default:
		return "unknown"
	}
}

// PrettyPrint returns the human readable name, e.g. SP5 or Tumbleweed
func (o OsVersion) PrettyPrint() string {
	if o.IsSLE15() {
		return "SP" + o.String()
	}
	return o.String()
}

func (o OsVersion) IsSLE15() bool {
	return o >= SP3 && o <= SP6
}

// IsTumbleweed reports whether o is a rolling release without support
// lifecycle dates
func (o OsVersion) IsTumbleweed() bool {
	return o == Tumbleweed
}

// ContainerOSVersion returns the OS version as used in container tags
func (o OsVersion) ContainerOSVersion() string {
	if o.IsTumbleweed() {
		return "latest"
	}
	return fmt.Sprintf("15.%s", o)
}

func (o *OsVersion) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseOsVersion(value.Value)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o OsVersion) MarshalYAML() (any, error) {
	return o.String(), nil
}
