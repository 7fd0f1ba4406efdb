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
	"path/filepath"

	"github.com/suse/bci-dockerfile-generator/internal/image"
	"github.com/suse/bci-dockerfile-generator/pkg/sys/vfs"
)

const ServiceFileName = "_service"

// Artifact is a rendered build description file
type Artifact struct {
	Name    string
	Content string
}

type Renderer struct {
	header Header
}

func New(header Header) *Renderer {
	return &Renderer{header: header}
}

// Artifacts renders the build recipe matching the image's recipe type
// together with its _service file
func (r *Renderer) Artifacts(d *image.Descriptor) ([]Artifact, error) {
	var recipe string
	switch d.BuildRecipeType {
	case image.Kiwi:
		kiwi, err := r.Kiwi(d)
		if err != nil {
			return nil, fmt.Errorf("rendering kiwi description of %s: %w", d.UID(), err)
		}
		recipe = kiwi
	default:
		recipe = r.Dockerfile(d)
	}

	return []Artifact{
		{Name: d.RecipeFileName(), Content: recipe},
		{Name: ServiceFileName, Content: r.Service(d)},
	}, nil
}

// WritePackage writes the artifacts into the package directory of the image
// below destDir and returns that directory
func WritePackage(fs vfs.FS, destDir string, d *image.Descriptor, artifacts []Artifact) (string, error) {
	pkgDir := filepath.Join(destDir, d.PackageName)
	if err := vfs.MkdirAll(fs, pkgDir, vfs.DirPerm); err != nil {
		return "", fmt.Errorf("creating package directory %s: %w", pkgDir, err)
	}

	for _, a := range artifacts {
		path := filepath.Join(pkgDir, a.Name)
		if err := fs.WriteFile(path, []byte(a.Content), vfs.FilePerm); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return pkgDir, nil
}
