package yaml

import (
	"fmt"
	"os"

	"report-srv/internal/model"
	"report-srv/internal/template/repository"
	"report-srv/pkg/log"

	"gopkg.in/yaml.v3"
)

// fileTemplate is one entry of the templates file.
type fileTemplate struct {
	Name             string `yaml:"name"`
	Kind             string `yaml:"kind"`
	Subject          string `yaml:"subject"`
	Body             string `yaml:"body"`
	Format           string `yaml:"format"`
	AttachmentPrefix string `yaml:"attachment_prefix"`
	Default          bool   `yaml:"default"`
	Active           bool   `yaml:"active"`
}

type templatesFile struct {
	Templates []fileTemplate `yaml:"templates"`
}

type implRepository struct {
	templates []model.ReportTemplate
	l         log.Logger
}

// New loads the templates file at path.
func New(path string, l log.Logger) (repository.Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrTemplateFileRead, path, err)
	}
	return NewFromBytes(data, l)
}

// NewFromBytes decodes templates from YAML content.
func NewFromBytes(data []byte, l log.Logger) (repository.Repository, error) {
	var file templatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrTemplateFileDecode, err)
	}

	templates := make([]model.ReportTemplate, 0, len(file.Templates))
	for i, ft := range file.Templates {
		t, err := toModel(ft)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s): %v", repository.ErrTemplateInvalid, i, ft.Name, err)
		}
		templates = append(templates, t)
	}

	return &implRepository{
		templates: templates,
		l:         l,
	}, nil
}

func toModel(ft fileTemplate) (model.ReportTemplate, error) {
	kind := model.ReportKind(ft.Kind)
	if !kind.IsValid() {
		return model.ReportTemplate{}, fmt.Errorf("unknown kind %q", ft.Kind)
	}

	format := model.DocumentFormat(ft.Format)
	if format == "" {
		format = model.DocumentFormatPDF
	}
	if !format.IsValid() {
		return model.ReportTemplate{}, fmt.Errorf("unknown format %q", ft.Format)
	}

	if ft.Subject == "" {
		return model.ReportTemplate{}, fmt.Errorf("subject is required")
	}

	return model.ReportTemplate{
		Name:             ft.Name,
		Kind:             kind,
		Subject:          ft.Subject,
		Body:             ft.Body,
		Format:           format,
		AttachmentPrefix: ft.AttachmentPrefix,
		IsDefault:        ft.Default,
		IsActive:         ft.Active,
	}, nil
}
