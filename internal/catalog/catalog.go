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

package catalog

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/suse/bci-dockerfile-generator/internal/image"
	"github.com/suse/bci-dockerfile-generator/pkg/log"
	"github.com/suse/bci-dockerfile-generator/pkg/sys"
	"github.com/suse/bci-dockerfile-generator/pkg/sys/vfs"
)

var extensions = []string{".yaml", ".yml"}

type file struct {
	Images []*image.Descriptor `yaml:"images"`
}

// Catalog is the ordered set of image descriptors known to the generator
type Catalog struct {
	images []*image.Descriptor
}

func New(images ...*image.Descriptor) *Catalog {
	return &Catalog{images: images}
}

// Load reads every catalog file of the given directory in lexical order.
// Each descriptor is completed with its defaults and validated.
func Load(s *sys.System, dir string) (*Catalog, error) {
	files, err := vfs.FindFiles(s.FS(), dir, extensions...)
	if err != nil {
		return nil, errors.Wrapf(err, "listing catalog directory %s", dir)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no catalog files found in %s", dir)
	}

	c := &Catalog{}
	for _, path := range files {
		images, err := loadFile(s, path)
		if err != nil {
			return nil, err
		}
		s.Logger().Debug("Loaded %d images from %s", len(images), path)
		c.images = append(c.images, images...)
	}

	return c, nil
}

func loadFile(s *sys.System, path string) ([]*image.Descriptor, error) {
	data, err := s.FS().ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog file %s", path)
	}

	var f file
	if err = image.ParseConfig(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing catalog file %s", path)
	}

	for _, d := range f.Images {
		if d.EnvFile != "" {
			envFile := d.EnvFile
			if !filepath.IsAbs(envFile) {
				envFile = filepath.Join(filepath.Dir(path), envFile)
			}
			envs, err := vfs.LoadEnvFile(s.FS(), envFile)
			if err != nil {
				return nil, errors.Wrapf(err, "loading environment of image %s", d.UID())
			}
			d.MergeEnv(envs)
		}

		d.Resolve()
		if err = d.Validate(); err != nil {
			return nil, errors.Wrapf(err, "catalog file %s", path)
		}
	}

	return f.Images, nil
}

// Images returns all descriptors in catalog order
func (c *Catalog) Images() []*image.Descriptor {
	return c.images
}

// Find returns every descriptor with the given uid, one per OS version
func (c *Catalog) Find(uid string) []*image.Descriptor {
	var found []*image.Descriptor
	for _, d := range c.images {
		if d.UID() == uid {
			found = append(found, d)
		}
	}
	return found
}

// Select returns the descriptors for which keep is true, in catalog order
func (c *Catalog) Select(keep func(*image.Descriptor) bool) []*image.Descriptor {
	var selected []*image.Descriptor
	for _, d := range c.images {
		if keep(d) {
			selected = append(selected, d)
		}
	}
	return selected
}

// Describe logs a one line summary of every image
func (c *Catalog) Describe(logger log.Logger) {
	for _, d := range c.images {
		logger.Debug("%s (%s, %s, %s)", d.UID(), d.OsVersion.PrettyPrint(), d.Kind, d.BuildRecipeType)
	}
}
