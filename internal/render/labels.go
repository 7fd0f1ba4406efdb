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

package render

import "github.com/suse/bci-dockerfile-generator/internal/image"

// prefixedLabels returns the labels OBS rewrites with the image label prefix
// in Dockerfile order. Rolling releases carry openSUSE lifecycle labels,
// versioned releases the SUSE support labels.
func prefixedLabels(d *image.Descriptor) image.KeyValues {
	labels := image.KeyValues{
		{Name: "org.opencontainers.image.title", Value: d.Title},
		{Name: "org.opencontainers.image.description", Value: d.Description},
		{Name: "org.opencontainers.image.version", Value: d.VersionLabel},
		{Name: "org.opencontainers.image.url", Value: d.URL},
		{Name: "org.opencontainers.image.created", Value: "%BUILDTIME%"},
		{Name: "org.opencontainers.image.vendor", Value: d.Vendor},
		{Name: "org.opencontainers.image.source", Value: "%SOURCEURL%"},
		{Name: "org.opensuse.reference", Value: d.Reference},
		{Name: "org.openbuildservice.disturl", Value: "%DISTURL%"},
	}

	if d.IsRollingRelease() {
		return append(labels, lifecycleLabel(d), releaseStageLabel(d))
	}
	return append(append(labels, supportLabels(d)...), lifecycleLabel(d), releaseStageLabel(d))
}

// kiwiPrefixedLabels is prefixedLabels in the order of the KIWI description:
// the url follows the source and the release stage precedes the lifecycle url
func kiwiPrefixedLabels(d *image.Descriptor) image.KeyValues {
	labels := image.KeyValues{
		{Name: "org.opencontainers.image.title", Value: d.Title},
		{Name: "org.opencontainers.image.description", Value: d.Description},
		{Name: "org.opencontainers.image.version", Value: d.VersionLabel},
		{Name: "org.opencontainers.image.created", Value: "%BUILDTIME%"},
		{Name: "org.opencontainers.image.vendor", Value: d.Vendor},
		{Name: "org.opencontainers.image.source", Value: "%SOURCEURL%"},
		{Name: "org.opencontainers.image.url", Value: d.URL},
		{Name: "org.opensuse.reference", Value: d.Reference},
		{Name: "org.openbuildservice.disturl", Value: "%DISTURL%"},
	}

	if !d.IsRollingRelease() {
		labels = append(labels, supportLabels(d)...)
	}
	return append(labels, releaseStageLabel(d), lifecycleLabel(d))
}

func supportLabels(d *image.Descriptor) image.KeyValues {
	labels := image.KeyValues{{Name: "com.suse.supportlevel", Value: d.SupportLevel}}
	if d.SupportedUntil != "" {
		labels = append(labels, image.KeyValue{Name: "com.suse.supportlevel.until", Value: d.SupportedUntil})
	}
	return append(labels, image.KeyValue{Name: "com.suse.eula", Value: d.EULA})
}

func vendorNamespace(d *image.Descriptor) string {
	if d.IsRollingRelease() {
		return "org.opensuse"
	}
	return "com.suse"
}

func lifecycleLabel(d *image.Descriptor) image.KeyValue {
	return image.KeyValue{Name: vendorNamespace(d) + ".lifecycle-url", Value: d.LifecycleURL}
}

func releaseStageLabel(d *image.Descriptor) image.KeyValue {
	return image.KeyValue{Name: vendorNamespace(d) + ".release-stage", Value: d.ReleaseStage}
}
