package domain

import (
	"fmt"
	"strings"
)

// Defaults for packaging the Streamlit assistant. The pip pin is a
// compatibility workaround for textract's install constraints, not a
// general policy.
const (
	DefaultBaseImage     = "python:3.10-slim"
	DefaultPipVersion    = "23.3.2"
	DefaultManifest      = "requirements.txt"
	DefaultEntrypoint    = "app.py"
	DefaultStreamlitPort = 8501
)

// ImageSpec describes how an application directory is packaged into a
// container image: base image, dependency install steps, exposed port and
// the foreground startup command. It is a pure value; rendering it twice
// yields byte-identical output.
type ImageSpec struct {
	BaseImage  string `json:"base_image"`
	PipVersion string `json:"pip_version"`
	Manifest   string `json:"manifest"`
	Entrypoint string `json:"entrypoint"`
	Port       int    `json:"port"`
}

// DefaultImageSpec returns the descriptor for the stock Streamlit app image.
func DefaultImageSpec() ImageSpec {
	return ImageSpec{
		BaseImage:  DefaultBaseImage,
		PipVersion: DefaultPipVersion,
		Manifest:   DefaultManifest,
		Entrypoint: DefaultEntrypoint,
		Port:       DefaultStreamlitPort,
	}
}

// normalized fills zero fields with the defaults so partial specs from API
// requests still render a complete descriptor.
func (s ImageSpec) normalized() ImageSpec {
	d := DefaultImageSpec()
	if s.BaseImage == "" {
		s.BaseImage = d.BaseImage
	}
	if s.PipVersion == "" {
		s.PipVersion = d.PipVersion
	}
	if s.Manifest == "" {
		s.Manifest = d.Manifest
	}
	if s.Entrypoint == "" {
		s.Entrypoint = d.Entrypoint
	}
	if s.Port == 0 {
		s.Port = d.Port
	}
	return s
}

// Dockerfile renders the descriptor as a linear, non-branching sequence of
// build steps. The pip pin always installs before the manifest so that a
// manifest entry with install-time constraints sees the pinned version.
func (s ImageSpec) Dockerfile() string {
	s = s.normalized()
	var b strings.Builder
	fmt.Fprintf(&b, "FROM %s\n", s.BaseImage)
	b.WriteString("WORKDIR /app\n")
	fmt.Fprintf(&b, "RUN pip install pip==%s\n", s.PipVersion)
	fmt.Fprintf(&b, "COPY %s .\n", s.Manifest)
	fmt.Fprintf(&b, "RUN pip install -r %s\n", s.Manifest)
	b.WriteString("COPY . .\n")
	fmt.Fprintf(&b, "EXPOSE %d\n", s.Port)
	fmt.Fprintf(&b, "CMD [\"streamlit\", \"run\", \"%s\", \"--server.port=%d\", \"--server.address=0.0.0.0\"]\n", s.Entrypoint, s.Port)
	return b.String()
}

// Validate rejects descriptors that could not produce a runnable image.
// Every string field ends up inside a rendered build step, so none may
// carry quotes or newlines; a newline would smuggle extra steps into the
// otherwise linear sequence.
func (s ImageSpec) Validate() error {
	s = s.normalized()
	if strings.ContainsAny(s.Manifest, "\"\n") || strings.ContainsAny(s.Entrypoint, "\"\n") {
		return fmt.Errorf("%w: manifest and entrypoint must be plain file names", ErrInvalidInput)
	}
	if strings.ContainsAny(s.BaseImage, "\"\n") {
		return fmt.Errorf("%w: base image must be a plain image reference", ErrInvalidInput)
	}
	if strings.ContainsAny(s.PipVersion, "\"\n") {
		return fmt.Errorf("%w: pip version must be a plain version string", ErrInvalidInput)
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidInput, s.Port)
	}
	return nil
}
