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

package image_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/suse/bci-dockerfile-generator/internal/image"
)

func TestImageSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Image descriptor test suite")
}

const pythonImage = `
name: python-3.11
packageName: python-3.11-image
osVersion: 5
kind: development
buildRecipeType: kiwi
buildTags:
  - bci/python:3.11
  - bci/python:3.11-%RELEASE%
  - bci/python:latest
  - bci/python3:3.11
packages:
  - python311
env:
  PYTHON_VERSION: "%%py311_ver%%"
  PIP_VERSION: "%%pip_ver%%"
extraLabels:
  com.suse.bci.python.flavor: slim
replacements:
  - regex: "%%py311_ver%%"
    packageName: python311-base
    parseVersion: patch
`

var _ = Describe("OsVersion", Label("os-version"), func() {
	It("parses command line and catalog values", func() {
		for input, expected := range map[string]image.OsVersion{
			"3":          image.SP3,
			"4":          image.SP4,
			"SP5":        image.SP5,
			"sp6":        image.SP6,
			"Tumbleweed": image.Tumbleweed,
		} {
			v, err := image.ParseOsVersion(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(expected))
		}
	})
	It("fails on unknown versions", func() {
		_, err := image.ParseOsVersion("16")
		Expect(err).To(MatchError("os version not supported: 16"))
	})
	It("prints SLE 15 service packs", func() {
		Expect(image.SP5.String()).To(Equal("5"))
		Expect(image.SP5.PrettyPrint()).To(Equal("SP5"))
		Expect(image.SP5.ContainerOSVersion()).To(Equal("15.5"))
		Expect(image.SP5.IsSLE15()).To(BeTrue())
		Expect(image.SP5.IsTumbleweed()).To(BeFalse())
	})
	It("prints the rolling release", func() {
		Expect(image.Tumbleweed.PrettyPrint()).To(Equal("Tumbleweed"))
		Expect(image.Tumbleweed.ContainerOSVersion()).To(Equal("latest"))
		Expect(image.Tumbleweed.IsSLE15()).To(BeFalse())
		Expect(image.Tumbleweed.IsTumbleweed()).To(BeTrue())
	})
	It("lists the SLE 15 lineage in order", func() {
		Expect(image.SLE15Versions()).To(Equal([]image.OsVersion{image.SP3, image.SP4, image.SP5, image.SP6}))
		Expect(image.SP3 < image.SP6).To(BeTrue())
	})
})

var _ = Describe("ContainerKind", Label("kind"), func() {
	It("treats application stacks as development containers", func() {
		Expect(image.KindApplication.IsDevelopment()).To(BeTrue())
		Expect(image.KindApplication.IsApplicationStack()).To(BeTrue())
		Expect(image.KindDevelopment.IsApplicationStack()).To(BeFalse())
		Expect(image.KindOS.IsDevelopment()).To(BeFalse())
		Expect(image.KindOS.IsOS()).To(BeTrue())
		Expect(image.KindBase.IsOS()).To(BeFalse())
	})
	It("maps recipe types to repositories", func() {
		Expect(image.Docker.RepositoryName()).To(Equal("containerfile"))
		Expect(image.Kiwi.RepositoryName()).To(Equal("images"))
	})
	It("rejects unknown kinds", func() {
		_, err := image.ParseContainerKind("appliance")
		Expect(err).To(HaveOccurred())
		_, err = image.ParseBuildType("podman")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Descriptor", Label("descriptor"), func() {
	var d *image.Descriptor

	BeforeEach(func() {
		d = &image.Descriptor{}
		Expect(image.ParseConfig([]byte(pythonImage), d)).To(Succeed())
	})

	It("is parsed from YAML keeping declaration order", func() {
		Expect(d.OsVersion).To(Equal(image.SP5))
		Expect(d.Kind).To(Equal(image.KindDevelopment))
		Expect(d.BuildRecipeType).To(Equal(image.Kiwi))
		Expect(d.Env).To(Equal(image.KeyValues{
			{Name: "PYTHON_VERSION", Value: "%%py311_ver%%"},
			{Name: "PIP_VERSION", Value: "%%pip_ver%%"},
		}))
		Expect(d.Replacements[0].ParseVersion).To(Equal(image.ParsePatch))
		Expect(d.Validate()).To(Succeed())
	})

	It("rejects unknown fields", func() {
		err := image.ParseConfig([]byte("name: foo\nflavour: slim\n"), &image.Descriptor{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("field flavour not found"))
	})

	It("splits the first build tag on its first colon", func() {
		name, tag, err := d.NameAndTag()
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal("bci/python"))
		Expect(tag).To(Equal("3.11"))
		Expect(d.AdditionalTags()).To(Equal([]string{"3.11-%RELEASE%", "latest"}))
	})

	It("names the recipe after the package for kiwi builds", func() {
		Expect(d.RecipeFileName()).To(Equal("python-3.11-image.kiwi"))
		d.BuildRecipeType = image.Docker
		Expect(d.RecipeFileName()).To(Equal("Dockerfile"))
	})

	It("merges env files without overriding declared variables", func() {
		d.MergeEnv(map[string]string{"PYTHON_VERSION": "3.11.9", "LANG": "C.UTF-8", "A": "b"})
		Expect(d.Env).To(Equal(image.KeyValues{
			{Name: "PYTHON_VERSION", Value: "%%py311_ver%%"},
			{Name: "PIP_VERSION", Value: "%%pip_ver%%"},
			{Name: "A", Value: "b"},
			{Name: "LANG", Value: "C.UTF-8"},
		}))
	})

	Describe("Resolve", func() {
		It("fills SUSE defaults for versioned releases", func() {
			d.Resolve()
			Expect(d.Vendor).To(Equal("SUSE LLC"))
			Expect(d.SupportLevel).To(Equal("techpreview"))
			Expect(d.EULA).To(Equal("sle-bci"))
			Expect(d.LabelPrefix).To(Equal("com.suse.bci.python-3.11"))
			Expect(d.Reference).To(Equal("registry.suse.com/bci/python:3.11"))
			Expect(d.VersionLabel).To(Equal("3.11"))
			Expect(d.KiwiVersion).To(Equal("15.5.0"))
			Expect(d.TestMarker).To(Equal("python-3.11"))
			Expect(d.License).To(Equal("MIT"))
		})
		It("fills openSUSE defaults for the rolling release", func() {
			d.OsVersion = image.Tumbleweed
			d.Kind = image.KindApplication
			d.Resolve()
			Expect(d.Vendor).To(Equal("openSUSE Project"))
			Expect(d.SupportLevel).To(BeEmpty())
			Expect(d.EULA).To(BeEmpty())
			Expect(d.LabelPrefix).To(Equal("org.opensuse.application.python-3.11"))
			Expect(d.Reference).To(Equal("registry.opensuse.org/opensuse/bci/python:3.11"))
		})
		It("keeps explicit values", func() {
			d.Vendor = "ACME"
			d.BuildVersion = "3.11.9"
			d.Resolve()
			Expect(d.Vendor).To(Equal("ACME"))
			Expect(d.VersionLabel).To(Equal("3.11.9"))
		})
	})

	Describe("Validate", func() {
		It("requires build tags", func() {
			d.BuildTags = nil
			Expect(d.Validate()).To(MatchError(image.ErrInvalidDescriptor))
		})
		It("requires tagged build tags", func() {
			d.BuildTags = []string{"bci/python"}
			err := d.Validate()
			Expect(err).To(MatchError(image.ErrInvalidDescriptor))
			Expect(err.Error()).To(ContainSubstring("has no tag"))
		})
		It("rejects malformed build tags", func() {
			d.BuildTags = []string{"BCI/Python:3.11"}
			Expect(d.Validate()).To(MatchError(image.ErrInvalidDescriptor))
		})
		It("accepts OBS placeholders in tags", func() {
			d.BuildTags = []string{"bci/bci-base:%OS_VERSION_ID_SP%", "bci/python:%%py311_ver%%"}
			Expect(d.Validate()).To(Succeed())
		})
		It("rejects unknown architectures", func() {
			d.ExclusiveArch = []image.Arch{image.ArchX86, "riscv64"}
			Expect(d.Validate()).To(MatchError(ContainSubstring("riscv64")))
		})
		It("rejects duplicated architectures", func() {
			d.ExclusiveArch = []image.Arch{image.ArchX86, image.ArchX86, image.ArchS390x, image.ArchPPC64le}
			err := d.Validate()
			Expect(err).To(MatchError(image.ErrInvalidDescriptor))
			Expect(err.Error()).To(ContainSubstring(`architecture "x86_64" listed twice`))
		})
		It("accepts a restricted architecture list", func() {
			d.ExclusiveArch = []image.Arch{image.ArchX86, image.ArchAarch64}
			Expect(d.Validate()).To(Succeed())
		})
		It("rejects unknown parse version modes", func() {
			d.Replacements[0].ParseVersion = "micro"
			Expect(d.Validate()).To(MatchError(ContainSubstring("micro")))
		})
	})
})
