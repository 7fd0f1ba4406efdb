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

import (
	"fmt"
	"strings"

	"github.com/suse/bci-dockerfile-generator/internal/image"
)

const (
	dockerfileRun = "RUN set -euo pipefail;"
	logClean      = "rm -rf /var/log/{lastlog,tallylog,zypper.log,zypp/history,YaST2}"
)

// Dockerfile renders the Dockerfile build description of the image
func (r *Renderer) Dockerfile(d *image.Descriptor) string {
	doc := &document{}
	twoStage := d.FromTargetImage != ""

	doc.add("# SPDX-License-Identifier: " + d.License)
	doc.blank()
	doc.add(r.header.Commented("# ")...)
	doc.blank()

	doc.addIf(len(d.ExclusiveArch) > 0, "#!ExclusiveArch: "+joinArchs(d.ExclusiveArch, " "))
	for _, tag := range d.BuildTags {
		doc.add("#!BuildTag: " + tag)
	}
	doc.addIf(d.BuildVersion != "",
		"#!BuildName: "+d.BuildName,
		"#!BuildVersion: "+d.BuildVersion,
	)
	doc.addIf(d.BuildRelease != "", "#!BuildRelease: "+d.BuildRelease)

	if twoStage {
		doc.add(
			fmt.Sprintf("FROM %s AS target", d.FromTargetImage),
			fmt.Sprintf("FROM %s AS builder", d.BaseImage()),
			"COPY --from=target / /target",
		)
	} else {
		doc.add("FROM " + d.BaseImage())
	}
	doc.blank()

	doc.addIf(len(d.Packages) > 0, zypperInstall(d, twoStage))
	doc.addIf(twoStage, "FROM target", "COPY --from=builder /target /")
	doc.blank()

	doc.add("MAINTAINER " + d.Maintainer)
	doc.blank()

	doc.add(
		"# Define labels according to https://en.opensuse.org/Building_derived_containers",
		"# labelprefix="+d.LabelPrefix,
	)
	for _, l := range prefixedLabels(d) {
		doc.add(fmt.Sprintf("LABEL %s=%s", l.Name, dockerQuote(l.Value)))
	}
	doc.add("# endlabelprefix")
	doc.add("LABEL io.artifacthub.package.readme-url=" + dockerQuote(d.ReadmeURL))
	doc.addIf(d.LogoURL != "", "LABEL io.artifacthub.package.logo-url="+dockerQuote(d.LogoURL))
	for _, l := range d.ExtraLabels {
		doc.add(fmt.Sprintf("LABEL %s=%s", l.Name, dockerQuote(l.Value)))
	}

	if len(d.Env) > 0 || len(d.Entrypoint) > 0 || len(d.Cmd) > 0 || len(d.Expose) > 0 {
		doc.blank()
	}
	for _, e := range d.Env {
		doc.add(fmt.Sprintf("ENV %s=%s", e.Name, dockerQuote(e.Value)))
	}
	doc.addIf(len(d.Entrypoint) > 0, "ENTRYPOINT "+execForm(d.Entrypoint))
	doc.addIf(len(d.Cmd) > 0, "CMD "+execForm(d.Cmd))
	doc.addIf(len(d.Expose) > 0, "EXPOSE "+strings.Join(d.Expose, " "))

	if d.CustomEnd != "" {
		doc.blank()
		doc.add(strings.TrimRight(d.CustomEnd, "\n"))
	}
	doc.addIf(d.EntrypointUser != "", "USER "+d.EntrypointUser)
	doc.addIf(len(d.Volumes) > 0, "VOLUME "+strings.Join(d.Volumes, " "))

	return doc.String()
}

// zypperInstall builds the single RUN instruction installing all packages and
// cleaning up zypper caches and logs afterwards
func zypperInstall(d *image.Descriptor, twoStage bool) string {
	args := []string{dockerfileRun, "zypper"}
	if twoStage {
		args = append(args, "--installroot", "/target", "--gpg-auto-import-keys")
	}
	args = append(args, "-n", "in")
	if d.NoRecommends {
		args = append(args, "--no-recommends")
	}
	args = append(args, d.Packages...)

	return strings.Join(args, " ") + "; zypper -n clean; " + logClean
}

func joinArchs(archs []image.Arch, sep string) string {
	names := make([]string, 0, len(archs))
	for _, a := range archs {
		names = append(names, string(a))
	}
	return strings.Join(names, sep)
}
