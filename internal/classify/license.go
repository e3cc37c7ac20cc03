package classify

import (
	"bytes"
	"log/slog"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// LicenseFiles are probed in order at the root.
var LicenseFiles = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "COPYING"}

// License describes how the project is licensed. Both fields may be empty.
type License struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// licenseMarkers map a distinctive phrase in a license text to its SPDX identifier.
var licenseMarkers = []struct {
	phrase string
	id     string
}{
	{"MIT License", "MIT"},
	{"Permission is hereby granted, free of charge", "MIT"},
	{"Apache License", "Apache-2.0"},
	{"GNU AFFERO GENERAL PUBLIC LICENSE", "AGPL-3.0"},
	{"GNU LESSER GENERAL PUBLIC LICENSE", "LGPL-3.0"},
	{"GNU GENERAL PUBLIC LICENSE", "GPL-3.0"},
	{"Mozilla Public License", "MPL-2.0"},
	{"ISC License", "ISC"},
	{"This is free and unencumbered software released into the public domain", "Unlicense"},
	{"BSD 3-Clause", "BSD-3-Clause"},
	{"BSD 2-Clause", "BSD-2-Clause"},
	{"Redistribution and use in source and binary forms", "BSD"},
}

// DetectLicense looks for a license file, then falls back to the license
// field of any manifest.
func DetectLicense(src *source.Source, s *signals.Signals) License {
	var l License
	for _, name := range LicenseFiles {
		if !s.HasRootName(name) {
			continue
		}
		l.File = name
		data, _, err := src.ReadLimited(name, 8<<10)
		if err != nil {
			slog.Warn("License file unreadable", logfields.File(name), logfields.Error(err))
			break
		}
		for _, m := range licenseMarkers {
			if bytes.Contains(data, []byte(m.phrase)) {
				l.Name = m.id
				break
			}
		}
		break
	}
	if l.Name == "" {
		switch {
		case s.Manifest != nil && s.Manifest.License != "":
			l.Name = s.Manifest.License
		case s.PyProject != nil && s.PyProject.License != "":
			l.Name = s.PyProject.License
		case s.Cargo != nil && s.Cargo.License != "":
			l.Name = s.Cargo.License
		}
	}
	return l
}
