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

const kiwiSchemaVersion = "7.4"

// Kiwi renders the KIWI image description of the image
func (r *Renderer) Kiwi(d *image.Descriptor) (string, error) {
	name, tag, err := d.NameAndTag()
	if err != nil {
		return "", err
	}

	doc := &document{}
	doc.add(
		`<?xml version="1.0" encoding="utf-8"?>`,
		fmt.Sprintf("<!-- SPDX-License-Identifier: %s -->", d.License),
		"<!--",
	)
	doc.add(r.header.Lines()...)
	doc.add(
		"-->",
		fmt.Sprintf("<!-- OBS-AddTag: %s -->", strings.Join(d.BuildTags, " ")),
		"<!-- OBS-Imagerepo: obsrepositories:/ -->",
	)
	doc.blank()

	doc.add(
		fmt.Sprintf(`<image schemaversion="%s" name="%s-image" xmlns:suse_label_helper="com.suse.label_helper">`, kiwiSchemaVersion, xmlEscape(d.UID())),
		`  <description type="system">`,
		fmt.Sprintf("    <author>%s</author>", xmlEscape(d.Vendor)),
		"    <contact>https://www.suse.com/</contact>",
		fmt.Sprintf("    <specification>%s Container Image</specification>", xmlEscape(d.Title)),
		"  </description>",
		"  <preferences>",
		fmt.Sprintf(`    <type image="docker"%s>`, derivedFrom(d)),
		"      <containerconfig",
		fmt.Sprintf(`          name="%s"`, xmlEscape(name)),
		fmt.Sprintf(`          tag="%s"`, xmlEscape(tag)),
	)
	if additional := d.AdditionalTags(); len(additional) > 0 {
		doc.add(fmt.Sprintf(`          additionaltags="%s"`, xmlEscape(strings.Join(additional, ","))))
	}
	doc.addIf(d.EntrypointUser != "", fmt.Sprintf(`          user="%s"`, xmlEscape(d.EntrypointUser)))
	doc.add(
		fmt.Sprintf(`          maintainer="%s">`, xmlEscape(d.Maintainer)),
		"        <labels>",
		fmt.Sprintf(`          <suse_label_helper:add_prefix prefix="%s">`, xmlEscape(d.LabelPrefix)),
	)
	for _, l := range append(kiwiPrefixedLabels(d), d.ExtraLabels...) {
		doc.add("            " + kiwiLabel(l.Name, l.Value))
	}
	doc.add(
		"          </suse_label_helper:add_prefix>",
		"          "+kiwiLabel("io.artifacthub.package.readme-url", d.ReadmeURL),
	)
	doc.addIf(d.LogoURL != "", "          "+kiwiLabel("io.artifacthub.package.logo-url", d.LogoURL))
	doc.add("        </labels>")

	if len(d.Cmd) > 0 {
		doc.add(kiwiExec("subcommand", d.Cmd)...)
	}
	if len(d.Entrypoint) > 0 {
		doc.add(kiwiExec("entrypoint", d.Entrypoint)...)
	}
	if len(d.Volumes) > 0 {
		doc.add("        <volumes>")
		for _, v := range d.Volumes {
			doc.add(fmt.Sprintf(`          <volume name="%s"/>`, xmlEscape(v)))
		}
		doc.add("        </volumes>")
	}
	if len(d.Expose) > 0 {
		doc.add("        <expose>")
		for _, p := range d.Expose {
			doc.add(fmt.Sprintf(`          <port number="%s"/>`, xmlEscape(p)))
		}
		doc.add("        </expose>")
	}
	if len(d.Env) > 0 {
		doc.add("        <environment>")
		for _, e := range d.Env {
			doc.add(fmt.Sprintf(`          <env name="%s" value="%s"/>`, xmlEscape(e.Name), xmlEscape(e.Value)))
		}
		doc.add("        </environment>")
	}

	doc.add(
		"      </containerconfig>",
		"    </type>",
		fmt.Sprintf("    <version>%s</version>", xmlEscape(d.KiwiVersion)),
		"    <packagemanager>zypper</packagemanager>",
		"    <rpm-check-signatures>false</rpm-check-signatures>",
		"    <rpm-excludedocs>true</rpm-excludedocs>",
		"  </preferences>",
		`  <repository type="rpm-md">`,
		`    <source path="obsrepositories:/"/>`,
		"  </repository>",
	)
	doc.add(kiwiPackages(d.Packages)...)
	doc.add("</image>")

	return doc.String(), nil
}

// derivedFrom returns the derived_from attribute pointing KIWI at the base
// image in the OBS repositories, empty when building from scratch
func derivedFrom(d *image.Descriptor) string {
	if d.FromImage == "" {
		return ""
	}
	name, tag := d.FromImage, "latest"
	if i := strings.LastIndex(d.FromImage, ":"); i > strings.LastIndex(d.FromImage, "/") {
		name, tag = d.FromImage[:i], d.FromImage[i+1:]
	}
	return fmt.Sprintf(` derived_from="obsrepositories:/%s#%s"`, xmlEscape(name), xmlEscape(tag))
}

func kiwiLabel(name, value string) string {
	return fmt.Sprintf(`<label name="%s" value="%s"/>`, xmlEscape(name), xmlEscape(value))
}

func kiwiExec(element string, args []string) []string {
	lines := []string{fmt.Sprintf(`        <%s execute="%s">`, element, xmlEscape(args[0]))}
	for _, a := range args[1:] {
		lines = append(lines, fmt.Sprintf(`          <argument name="%s"/>`, xmlEscape(a)))
	}
	return append(lines, fmt.Sprintf("        </%s>", element))
}

func kiwiPackages(packages []string) []string {
	if len(packages) == 0 {
		return []string{`  <packages type="image"/>`}
	}
	lines := []string{`  <packages type="image">`}
	for _, p := range packages {
		lines = append(lines, fmt.Sprintf(`    <package name="%s"/>`, xmlEscape(p)))
	}
	return append(lines, "  </packages>")
}
